package entity

// SyntheticEventPrefix marks calendar events projected from
// appointment-type entries. Events carrying this prefix are derived at
// read time and are never written to the calendar collection.
const SyntheticEventPrefix = "kb-"

type CalendarEvent struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:mm
	Duration    int    `json:"duration"`
	IsAIRelated bool   `json:"isAIRelated"`
}

type Reminder struct {
	Id           string `json:"id"`
	Text         string `json:"text"`
	DueTimestamp int64  `json:"dueTimestamp"`
	IsCompleted  bool   `json:"isCompleted"`
}
