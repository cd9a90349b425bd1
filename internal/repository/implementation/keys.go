package implementation

import (
	"encoding/base64"

	"braik-ai-be/internal/repository/contract"
)

const keyPrefix = "braik"

// Global (unscoped) keys.
const (
	usersRegistryKey = keyPrefix + ":users_registry"
	activeUserKey    = keyPrefix + ":active_user"
)

// Per-user collection names.
const (
	colEntries   = "entries"
	colCalendar  = "calendar"
	colReminders = "reminders"
	colHistory   = "search_history"
	colSessions  = "workspace_sessions"
	colInsights  = "insights"
	colWhatsApp  = "whatsapp_settings"
	colSocial    = "social_settings"
)

// keyFor derives the storage key for a collection in a scope. The
// email is base64url-encoded so raw addresses never appear in key
// names and distinct emails cannot collide.
func keyFor(scope contract.Scope, collection string) string {
	if scope.IsGuest() {
		return keyPrefix + ":guest:" + collection
	}
	enc := base64.RawURLEncoding.EncodeToString([]byte(scope.Email()))
	return keyPrefix + ":" + enc + ":" + collection
}
