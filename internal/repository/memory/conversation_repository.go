package memory

import (
	"context"

	"github.com/patrickmn/go-cache"
)

type ConversationRepository struct {
	cache *cache.Cache
}

// NewConversationRepository creates the in-process user→conversation store.
// Entries never expire on their own: a mapping stays valid until the user
// clears it or the process restarts.
func NewConversationRepository() *ConversationRepository {
	c := cache.New(cache.NoExpiration, 0)
	return &ConversationRepository{
		cache: c,
	}
}

func (r *ConversationRepository) Get(ctx context.Context, userId string) (string, bool) {
	if x, found := r.cache.Get(userId); found {
		return x.(string), true
	}
	return "", false
}

func (r *ConversationRepository) Set(ctx context.Context, userId string, conversationId string) {
	r.cache.Set(userId, conversationId, cache.NoExpiration)
}

func (r *ConversationRepository) Delete(ctx context.Context, userId string) {
	r.cache.Delete(userId)
}
