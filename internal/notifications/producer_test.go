package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublisher_PublishCatalogNotification(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()

	var sent []byte
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, "catalog-updates", msg.Topic)
		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "v2", string(key))
		sent, err = msg.Value.Encode()
		return err
	})

	publisher := NewKafkaPublisherWithProducer(producer, "catalog-updates")
	n := NewCatalogReloaded("builtin", "v2", "v1", 30, 15, 20, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	err := publisher.PublishCatalogNotification(context.Background(), n)
	require.NoError(t, err)

	var decoded CatalogNotification
	require.NoError(t, json.Unmarshal(sent, &decoded))
	assert.Equal(t, NotificationTypeCatalogReloaded, decoded.Type)
	assert.Equal(t, "v1", decoded.PreviousVersion)
	assert.Equal(t, 20, decoded.Events)
}

func TestKafkaPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	defer producer.Close()
	producer.ExpectSendMessageAndFail(errors.New("broker down"))

	publisher := NewKafkaPublisherWithProducer(producer, "catalog-updates")
	n := NewCatalogReloaded("file", "v3", "", 1, 1, 1, time.Now())

	err := publisher.PublishCatalogNotification(context.Background(), n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker down")
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}

	assert.NoError(t, p.PublishCatalogNotification(context.Background(), &CatalogNotification{}))
	assert.NoError(t, p.Close())
}
