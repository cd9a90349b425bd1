package entity

type AutoReplyMode string

const (
	AutoReplyContactsOnly AutoReplyMode = "contacts_only"
	AutoReplyAll          AutoReplyMode = "all"
)

// WhatsAppSettings tracks the simulated WhatsApp pairing state. No
// real WhatsApp connection is ever made.
type WhatsAppSettings struct {
	IsConnected   bool          `json:"isConnected"`
	IsEnabled     bool          `json:"isEnabled"`
	LastActivity  int64         `json:"lastActivity"`
	AutoReplyMode AutoReplyMode `json:"autoReplyMode"`
}

func DefaultWhatsAppSettings() WhatsAppSettings {
	return WhatsAppSettings{AutoReplyMode: AutoReplyContactsOnly}
}

type ManagedPage struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Handle      string `json:"handle"`
	IsActive    bool   `json:"isActive"`
	Platform    string `json:"platform"`
	ConnectedAt int64  `json:"connectedAt"`
}

type SocialPlatformSettings struct {
	Platform           string        `json:"platform"`
	IsConnected        bool          `json:"isConnected"`
	IsEnabled          bool          `json:"isEnabled"`
	ManagedPages       []ManagedPage `json:"managedPages,omitempty"`
	RepliesCount       int           `json:"repliesCount"`
	LastReplyTimestamp int64         `json:"lastReplyTimestamp"`
}

// DefaultSocialSettings is the documented default social collection:
// the three supported platforms, disconnected.
func DefaultSocialSettings() []SocialPlatformSettings {
	return []SocialPlatformSettings{
		{Platform: "facebook"},
		{Platform: "instagram"},
		{Platform: "tiktok"},
	}
}
