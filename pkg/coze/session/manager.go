package session

import (
	"context"

	"bookquiz-be/internal/pkg/logger"
	"bookquiz-be/pkg/store"
)

// ConversationCreator is the slice of the chat client the manager needs.
type ConversationCreator interface {
	CreateConversation(ctx context.Context, userId string) (string, error)
}

// Manager keeps at most one external conversation id per user, creating it
// lazily. Two concurrent GetOrCreate calls for the same user may race and
// create two external conversations; only the last stored mapping stays
// reachable, which is accepted.
type Manager struct {
	store   store.ConversationStore
	creator ConversationCreator
	log     logger.ILogger
}

func NewManager(convStore store.ConversationStore, creator ConversationCreator, log logger.ILogger) *Manager {
	return &Manager{
		store:   convStore,
		creator: creator,
		log:     log,
	}
}

// GetOrCreate returns the user's conversation id, creating one on miss.
func (m *Manager) GetOrCreate(ctx context.Context, userId string) (string, error) {
	if conversationId, found := m.store.Get(ctx, userId); found {
		return conversationId, nil
	}

	conversationId, err := m.creator.CreateConversation(ctx, userId)
	if err != nil {
		return "", err
	}
	m.store.Set(ctx, userId, conversationId)

	m.log.Info("session", "Conversation mapping stored", map[string]interface{}{
		"user_id":         userId,
		"conversation_id": conversationId,
	})
	return conversationId, nil
}

// Get returns the current mapping without creating one.
func (m *Manager) Get(ctx context.Context, userId string) (string, bool) {
	return m.store.Get(ctx, userId)
}

// Clear drops the mapping. The external conversation itself is left alone;
// the service owns its lifetime.
func (m *Manager) Clear(ctx context.Context, userId string) {
	m.store.Delete(ctx, userId)
}
