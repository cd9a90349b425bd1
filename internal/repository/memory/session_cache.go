package memory

import (
	"time"

	"braik-ai-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// SessionCache keeps resolved identities and their trial status in
// memory so request handling does not re-read the users registry on
// every call. Entries expire on their own; auth mutations invalidate
// eagerly.
type SessionCache struct {
	cache *cache.Cache
}

type CachedIdentity struct {
	Profile entity.UserProfile
	Trial   entity.TrialStatus
}

func NewSessionCache() *SessionCache {
	// Default expiration 5 minutes keeps trial day counts fresh enough;
	// expired items are purged every 10 minutes.
	return &SessionCache{cache: cache.New(5*time.Minute, 10*time.Minute)}
}

func (c *SessionCache) Save(email string, identity *CachedIdentity) {
	c.cache.Set(email, identity, cache.DefaultExpiration)
}

func (c *SessionCache) Get(email string) (*CachedIdentity, bool) {
	if x, found := c.cache.Get(email); found {
		return x.(*CachedIdentity), true
	}
	return nil, false
}

func (c *SessionCache) Invalidate(email string) {
	c.cache.Delete(email)
}
