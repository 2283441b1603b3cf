package store

import "context"

// ConversationStore maps an application user id to its current external
// conversation id. The external chat service stays authoritative for
// conversation state; this is only a hint cache with last-write-wins
// semantics, so a stale id must be tolerated by callers.
type ConversationStore interface {
	Get(ctx context.Context, userId string) (string, bool)
	Set(ctx context.Context, userId string, conversationId string)
	Delete(ctx context.Context, userId string)
}
