package model

// InsightRequest is the body of POST /api/insights. Without Question it
// asks for a full analysis (needs at least two logs); with Question it is
// a drill-down over the same logs (one log is enough). Consolidate asks
// the server to merge same-day entries before prompting.
type InsightRequest struct {
	Logs        []LogEntry `json:"logs"`
	Question    string     `json:"question,omitempty"`
	Consolidate bool       `json:"consolidate,omitempty"`
}

type DrillDownResponse struct {
	Answer string `json:"answer"`
}

type ConsolidateRequest struct {
	Logs []LogEntry `json:"logs"`
}

type ConsolidateResponse struct {
	Logs []LogEntry `json:"logs"`
}

// TipResponse carries the daily tip plus the date it was generated for,
// so clients can cache it for the rest of the calendar day.
type TipResponse struct {
	Tip  string `json:"tip"`
	Date string `json:"date"`
}
