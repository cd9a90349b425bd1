package entity

// WeeklyStrategy is the structured plan produced by the strategy
// generator from entries and calendar events.
type WeeklyStrategy struct {
	Focus       string        `json:"focus"`
	Days        []StrategyDay `json:"days"`
	Risks       []string      `json:"risks"`
	GeneratedAt int64         `json:"generatedAt"`
}

type StrategyDay struct {
	Day   string   `json:"day"`
	Tasks []string `json:"tasks"`
}
