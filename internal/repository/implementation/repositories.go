package implementation

import (
	"braik-ai-be/internal/repository/contract"
	"braik-ai-be/pkg/kvstore"
)

// Repositories bundles every collection repository over one store.
// All repositories share the store, so a backend swap (memory, redis,
// postgres) swaps persistence for the whole data layer at once.
type Repositories struct {
	Users     contract.UserRegistry
	Entries   contract.EntryRepository
	Calendar  contract.CalendarRepository
	Reminders contract.ReminderRepository
	History   contract.HistoryRepository
	Sessions  contract.ChatSessionRepository
	Insights  contract.InsightRepository
	Channels  contract.ChannelRepository
}

func NewRepositories(store kvstore.Store) *Repositories {
	return &Repositories{
		Users:     NewUserRegistry(store),
		Entries:   NewEntryRepository(store),
		Calendar:  NewCalendarRepository(store),
		Reminders: NewReminderRepository(store),
		History:   NewHistoryRepository(store),
		Sessions:  NewChatSessionRepository(store),
		Insights:  NewInsightRepository(store),
		Channels:  NewChannelRepository(store),
	}
}
