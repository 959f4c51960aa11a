package calendar

type CalendarLinkResponse struct {
	EventID   int    `json:"event_id"`
	GoogleURL string `json:"google_url"`
	ICSURL    string `json:"ics_url"`
}

// ICSFile is a calendar download.
type ICSFile struct {
	Filename string
	Body     string
}
