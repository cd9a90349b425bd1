package entity

type EntryType string

const (
	EntryTypeNote        EntryType = "note"
	EntryTypeAppointment EntryType = "appointment"
	EntryTypeContact     EntryType = "contact"
	EntryTypeDocument    EntryType = "document"
	EntryTypeGeneral     EntryType = "general"
)

// ValidEntryType reports whether t is one of the known entry types.
func ValidEntryType(t EntryType) bool {
	switch t {
	case EntryTypeNote, EntryTypeAppointment, EntryTypeContact, EntryTypeDocument, EntryTypeGeneral:
		return true
	}
	return false
}

// BusinessEntry is a single knowledge-base record. Identity is the Id;
// saving with an existing Id overwrites the record in place.
type BusinessEntry struct {
	Id          string            `json:"id"`
	Type        EntryType         `json:"type"`
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	Date        string            `json:"date,omitempty"` // YYYY-MM-DD
	Timestamp   int64             `json:"timestamp"`      // unix millis
	IsSensitive bool              `json:"isSensitive"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
