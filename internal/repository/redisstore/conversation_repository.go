package redisstore

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "coze:conversation:"

// ConversationRepository is the shared-cache variant of the conversation
// store for multi-instance deployments. Plain SET/GET/DEL keeps the same
// last-write-wins semantics as the in-process store.
type ConversationRepository struct {
	rdb *redis.Client
}

func NewConversationRepository(rdb *redis.Client) *ConversationRepository {
	return &ConversationRepository{rdb: rdb}
}

func (r *ConversationRepository) Get(ctx context.Context, userId string) (string, bool) {
	val, err := r.rdb.Get(ctx, keyPrefix+userId).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *ConversationRepository) Set(ctx context.Context, userId string, conversationId string) {
	// No TTL: the mapping lives until cleared, same as the memory store.
	r.rdb.Set(ctx, keyPrefix+userId, conversationId, 0)
}

func (r *ConversationRepository) Delete(ctx context.Context, userId string) {
	r.rdb.Del(ctx, keyPrefix+userId)
}
