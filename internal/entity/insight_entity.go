package entity

type AlertType string

const (
	AlertTypeForgotten AlertType = "forgotten"
	AlertTypeAnomaly   AlertType = "anomaly"
	AlertTypeStrategy  AlertType = "strategy"
)

type GuardianAlert struct {
	Id        string    `json:"id"`
	Type      AlertType `json:"type"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Timestamp int64     `json:"timestamp"`
}

// BehavioralInsights is the incrementally merged profile of the user.
// Fragments returned by background analysis overwrite only the fields
// they carry; everything else is preserved across merges.
type BehavioralInsights struct {
	WritingStyle     string          `json:"writingStyle"`
	FrequentTopics   []string        `json:"frequentTopics"`
	AnticipatedNeeds []string        `json:"anticipatedNeeds"`
	GuardianAlerts   []GuardianAlert `json:"guardianAlerts"`
	LastAnalysis     int64           `json:"lastAnalysis"`
}

// DefaultInsights is the documented empty default for the insights
// collection.
func DefaultInsights() BehavioralInsights {
	return BehavioralInsights{
		WritingStyle:     "Analisi in corso...",
		FrequentTopics:   []string{},
		AnticipatedNeeds: []string{},
		GuardianAlerts:   []GuardianAlert{},
	}
}

// InsightFragment is a partial profile returned by a background
// analysis run. Pointer/nil fields distinguish "absent" from "empty"
// so the merge can preserve previous values.
type InsightFragment struct {
	WritingStyle     *string  `json:"writingStyle,omitempty"`
	FrequentTopics   []string `json:"frequentTopics,omitempty"`
	AnticipatedNeeds []string `json:"anticipatedNeeds,omitempty"`
}
