package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookquiz-be/internal/constant"
	"bookquiz-be/internal/dto"
	"bookquiz-be/internal/pkg/serverutils"
	"bookquiz-be/internal/repository/memory"
	"bookquiz-be/pkg/coze"
	"bookquiz-be/pkg/coze/session"

	"github.com/stretchr/testify/assert"
)

// fakeCozeBackend emulates enough of the chat service for the full
// submit, poll, read-answer flow.
type fakeCozeBackend struct {
	pollsBeforeDone int
	polls           int
	chatCalls       int
	answer          string
}

func (b *fakeCozeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v3/chat", func(w http.ResponseWriter, r *http.Request) {
		b.chatCalls++
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":              "chat-1",
			"conversation_id": "conv-1",
			"status":          coze.StatusInProgress,
		})
	})
	mux.HandleFunc("/v3/chat/retrieve", func(w http.ResponseWriter, r *http.Request) {
		b.polls++
		status := coze.StatusInProgress
		if b.polls > b.pollsBeforeDone {
			status = coze.StatusCompleted
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"status": status})
	})
	mux.HandleFunc("/v3/chat/message/list", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]interface{}{
				{"id": "m1", "role": coze.RoleUser, "type": "question", "content": "hi"},
				{"id": "m2", "role": coze.RoleAssistant, "type": coze.MessageTypeAnswer, "content": b.answer},
			},
		})
	})
	return mux
}

func newChatFixture(t *testing.T, backend *fakeCozeBackend) IChatService {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	client := coze.NewClient(coze.Config{
		APIKey:          "test-key",
		BaseURL:         srv.URL,
		BotID:           "bot-1",
		PollMaxAttempts: 10,
		PollInterval:    time.Millisecond,
	}, nopLogger{})

	sessions := session.NewManager(memory.NewConversationRepository(), client, nopLogger{})
	return NewChatService(client, sessions)
}

func TestCompleteReturnsAnswer(t *testing.T) {
	backend := &fakeCozeBackend{pollsBeforeDone: 2, answer: "这本书讲的是习惯的力量。"}
	svc := newChatFixture(t, backend)

	resp, err := svc.Complete(context.Background(), "user-1", &dto.CompleteChatRequest{Query: "这本书讲什么？"})
	assert.NoError(t, err)

	assert.Equal(t, coze.StatusCompleted, resp.Status)
	assert.Equal(t, "这本书讲的是习惯的力量。", resp.Answer)
	assert.Equal(t, "chat-1", resp.ChatId)
	assert.Equal(t, 3, backend.polls)
}

func TestCompleteTimesOut(t *testing.T) {
	backend := &fakeCozeBackend{pollsBeforeDone: 1000}
	svc := newChatFixture(t, backend)

	_, err := svc.Complete(context.Background(), "user-1", &dto.CompleteChatRequest{Query: "hi"})

	var appErr *serverutils.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, constant.ErrCodeChatTimeout, appErr.Code)
	}
	assert.Equal(t, 10, backend.polls)
}

func TestSendReusesSessionConversation(t *testing.T) {
	backend := &fakeCozeBackend{}
	svc := newChatFixture(t, backend)

	first, err := svc.Send(context.Background(), "user-1", &dto.SendChatRequest{Query: "hello"})
	assert.NoError(t, err)
	second, err := svc.Send(context.Background(), "user-1", &dto.SendChatRequest{Query: "again"})
	assert.NoError(t, err)

	assert.Equal(t, first.ConversationId, second.ConversationId)
	// One create plus two turns.
	assert.Equal(t, 3, backend.chatCalls)
}

func TestGetConversationWithoutSession(t *testing.T) {
	svc := newChatFixture(t, &fakeCozeBackend{})

	_, err := svc.GetConversation(context.Background(), "user-1")

	var appErr *serverutils.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, constant.ErrCodeConversationMissing, appErr.Code)
	}
}

func TestClearConversationDropsMapping(t *testing.T) {
	backend := &fakeCozeBackend{}
	svc := newChatFixture(t, backend)

	_, err := svc.CreateConversation(context.Background(), "user-1")
	assert.NoError(t, err)

	assert.NoError(t, svc.ClearConversation(context.Background(), "user-1"))

	_, err = svc.GetConversation(context.Background(), "user-1")
	assert.Error(t, err)
}
