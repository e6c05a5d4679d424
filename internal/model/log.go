package model

// LogEntry is one diary record: what the user ate and how their skin
// responded. Raw entries come from the client with a timestamp id;
// consolidated entries use the date itself as id. JSON names match the
// client's stored format.
type LogEntry struct {
	ID           string `json:"id"`
	Date         string `json:"date"`  // YYYY-MM-DD
	Food         string `json:"food"`
	Water        int    `json:"water"` // glasses
	SkinReaction string `json:"skinReaction"`
	SkinRating   int    `json:"skinRating"`        // 1-5
	Photo        string `json:"photo,omitempty"`   // base64
	Supplements  string `json:"supplements,omitempty"`
	IntakeTime   string `json:"intakeTime,omitempty"`   // HH:MM
	ReactionTime string `json:"reactionTime,omitempty"` // HH:MM
}

// InsightSections is the structured result of a full analysis. An empty
// string in any field means the model found too little data for that
// dimension.
type InsightSections struct {
	FoodCorrelations       string `json:"foodCorrelations"`
	SupplementCorrelations string `json:"supplementCorrelations"`
	TimingAnalysis         string `json:"timingAnalysis"`
	WaterAnalysis          string `json:"waterAnalysis"`
	Summary                string `json:"summary"`
}
