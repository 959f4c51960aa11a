package calendar

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"bandacious/internal/catalog"
	"bandacious/internal/clock"

	ical "github.com/arran4/golang-ical"
)

// GoogleCalendarURL is the template endpoint external calendar links point at.
const GoogleCalendarURL = "https://calendar.google.com/calendar/render"

// TimestampLayout is the UTC form used in links and calendar files.
const TimestampLayout = "20060102T150405Z"

type Options struct {
	LocationSuffix string
	UIDDomain      string
	Duration       time.Duration
	ProductID      string
}

func DefaultOptions() Options {
	return Options{
		LocationSuffix: "London",
		UIDDomain:      "bandacious.com",
		Duration:       2 * time.Hour,
		ProductID:      "-//Bandacious//EN",
	}
}

// Exporter formats events for external calendars. Apart from reading the
// clock for DTSTAMP it does no I/O.
type Exporter struct {
	opts  Options
	clock clock.Clock
}

func NewExporter(opts Options, clk clock.Clock) *Exporter {
	defaults := DefaultOptions()
	if opts.LocationSuffix == "" {
		opts.LocationSuffix = defaults.LocationSuffix
	}
	if opts.UIDDomain == "" {
		opts.UIDDomain = defaults.UIDDomain
	}
	if opts.Duration <= 0 {
		opts.Duration = defaults.Duration
	}
	if opts.ProductID == "" {
		opts.ProductID = defaults.ProductID
	}
	return &Exporter{opts: opts, clock: clk}
}

// Window returns the start and end of the calendar entry, both in UTC.
func (x *Exporter) Window(ev catalog.Event) (time.Time, time.Time) {
	start := ev.Date.UTC()
	return start, start.Add(x.opts.Duration)
}

// UID is the stable calendar identifier of an event.
func (x *Exporter) UID(ev catalog.Event) string {
	return fmt.Sprintf("%d@%s", ev.ID, x.opts.UIDDomain)
}

func (x *Exporter) summary(ev catalog.Event, venue catalog.Venue) string {
	return fmt.Sprintf("%s at %s", ev.Title, venue.Name)
}

func (x *Exporter) location(venue catalog.Venue) string {
	return fmt.Sprintf("%s, %s", venue.Name, x.opts.LocationSuffix)
}

// GoogleURL builds an "add to calendar" link with every value query-encoded.
func (x *Exporter) GoogleURL(ev catalog.Event, venue catalog.Venue) string {
	start, end := x.Window(ev)

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", x.summary(ev, venue))
	params.Set("dates", start.Format(TimestampLayout)+"/"+end.Format(TimestampLayout))
	params.Set("location", x.location(venue))
	params.Set("details", fmt.Sprintf("Join us for %s at %s!", ev.Title, venue.Name))

	return GoogleCalendarURL + "?" + params.Encode()
}

// ICS renders a VCALENDAR holding a single VEVENT. Lines end in CRLF.
func (x *Exporter) ICS(ev catalog.Event, venue catalog.Venue) string {
	start, end := x.Window(ev)

	cal := ical.NewCalendar()
	cal.SetProductId(x.opts.ProductID)
	cal.SetMethod(ical.MethodPublish)

	vevent := cal.AddEvent(x.UID(ev))
	vevent.SetDtStampTime(x.clock.Now().UTC())
	vevent.SetStartAt(start)
	vevent.SetEndAt(end)
	vevent.SetSummary(x.summary(ev, venue))
	vevent.SetLocation(x.location(venue))

	return cal.Serialize(ical.WithNewLineWindows)
}

// Filename names the downloaded calendar file after the event title, with
// runs of whitespace collapsed to underscores.
func (x *Exporter) Filename(ev catalog.Event) string {
	name := strings.Join(strings.Fields(ev.Title), "_")
	if name == "" {
		name = fmt.Sprintf("event-%d", ev.ID)
	}
	return name + ".ics"
}
