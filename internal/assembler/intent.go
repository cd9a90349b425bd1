package assembler

import "regexp"

// Intent is the locally classified purpose of a user query. The
// classification decides which gateway capability a turn uses and runs
// before any network call.
type Intent string

const (
	IntentConversation Intent = "conversation"
	IntentImage        Intent = "image"
	IntentStrategy     Intent = "strategy"
)

var (
	imagePattern    = regexp.MustCompile(`(?i)disegna|genera immagine|crea immagine|illustra|fammi un disegno`)
	strategyPattern = regexp.MustCompile(`(?i)organizza la settimana|strategia settimanale|pianifica la settimana`)
)

// ClassifyIntent is a pure pattern match against the query text. No
// network, no state.
func ClassifyIntent(query string) Intent {
	switch {
	case imagePattern.MatchString(query):
		return IntentImage
	case strategyPattern.MatchString(query):
		return IntentStrategy
	default:
		return IntentConversation
	}
}
