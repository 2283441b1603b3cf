package service

import (
	"context"
	"errors"

	"bookquiz-be/internal/constant"
	"bookquiz-be/internal/dto"
	"bookquiz-be/internal/pkg/serverutils"
	"bookquiz-be/pkg/coze"
	"bookquiz-be/pkg/coze/session"

	"github.com/gofiber/fiber/v2"
)

type IChatService interface {
	CreateConversation(ctx context.Context, userId string) (*dto.CreateConversationResponse, error)
	GetConversation(ctx context.Context, userId string) (*dto.ConversationResponse, error)
	ClearConversation(ctx context.Context, userId string) error
	Send(ctx context.Context, userId string, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	Complete(ctx context.Context, userId string, req *dto.CompleteChatRequest) (*dto.CompleteChatResponse, error)
	Status(ctx context.Context, conversationId, chatId string) (*dto.ChatStatusResponse, error)
	Messages(ctx context.Context, conversationId, chatId string) (*dto.ChatMessagesResponse, error)
}

type chatService struct {
	client   *coze.Client
	sessions *session.Manager
}

func NewChatService(client *coze.Client, sessions *session.Manager) IChatService {
	return &chatService{
		client:   client,
		sessions: sessions,
	}
}

func (s *chatService) CreateConversation(ctx context.Context, userId string) (*dto.CreateConversationResponse, error) {
	conversationId, err := s.sessions.GetOrCreate(ctx, userId)
	if err != nil {
		return nil, wrapChatErr(err)
	}
	return &dto.CreateConversationResponse{ConversationId: conversationId}, nil
}

func (s *chatService) GetConversation(ctx context.Context, userId string) (*dto.ConversationResponse, error) {
	conversationId, found := s.sessions.Get(ctx, userId)
	if !found {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, constant.ErrCodeConversationMissing, "No active conversation", nil)
	}
	return &dto.ConversationResponse{ConversationId: conversationId}, nil
}

func (s *chatService) ClearConversation(ctx context.Context, userId string) error {
	s.sessions.Clear(ctx, userId)
	return nil
}

// resolveConversation prefers the conversation id on the request; otherwise
// it falls back to the user's stored session, creating one on first use.
func (s *chatService) resolveConversation(ctx context.Context, userId, requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}
	return s.sessions.GetOrCreate(ctx, userId)
}

func (s *chatService) Send(ctx context.Context, userId string, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	conversationId, err := s.resolveConversation(ctx, userId, req.ConversationId)
	if err != nil {
		return nil, wrapChatErr(err)
	}

	result, err := s.client.Chat(ctx, userId, conversationId, req.Query)
	if err != nil {
		return nil, wrapChatErr(err)
	}

	return &dto.SendChatResponse{
		ChatId:         result.ChatID,
		ConversationId: conversationId,
		Status:         result.Status,
	}, nil
}

func (s *chatService) Complete(ctx context.Context, userId string, req *dto.CompleteChatRequest) (*dto.CompleteChatResponse, error) {
	conversationId, err := s.resolveConversation(ctx, userId, req.ConversationId)
	if err != nil {
		return nil, wrapChatErr(err)
	}

	result, err := s.client.Chat(ctx, userId, conversationId, req.Query)
	if err != nil {
		return nil, wrapChatErr(err)
	}

	status, err := s.client.PollUntilTerminal(ctx, conversationId, result.ChatID)
	if err != nil {
		return nil, wrapChatErr(err)
	}

	resp := &dto.CompleteChatResponse{
		ChatId:         result.ChatID,
		ConversationId: conversationId,
		Status:         status.Status,
	}

	// Only a completed turn carries an answer; failed and requires_action
	// surface as-is so the client can react.
	if status.Status != coze.StatusCompleted {
		return resp, nil
	}

	messages, err := s.client.ListMessages(ctx, conversationId, result.ChatID)
	if err != nil {
		return nil, wrapChatErr(err)
	}
	answer, err := coze.LastAssistantAnswer(messages)
	if err != nil {
		return nil, wrapChatErr(err)
	}
	resp.Answer = answer
	return resp, nil
}

func (s *chatService) Status(ctx context.Context, conversationId, chatId string) (*dto.ChatStatusResponse, error) {
	status, err := s.client.RetrieveStatus(ctx, conversationId, chatId)
	if err != nil {
		return nil, wrapChatErr(err)
	}
	return &dto.ChatStatusResponse{
		ChatId:         chatId,
		ConversationId: conversationId,
		Status:         status.Status,
	}, nil
}

func (s *chatService) Messages(ctx context.Context, conversationId, chatId string) (*dto.ChatMessagesResponse, error) {
	messages, err := s.client.ListMessages(ctx, conversationId, chatId)
	if err != nil {
		return nil, wrapChatErr(err)
	}

	responses := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, dto.ChatMessageResponse{
			Id:      m.ID,
			Role:    m.Role,
			Type:    m.Type,
			Content: m.Content,
		})
	}
	return &dto.ChatMessagesResponse{Messages: responses}, nil
}

func wrapChatErr(err error) error {
	switch {
	case errors.Is(err, coze.ErrPollTimeout):
		return serverutils.NewAppError(fiber.StatusGatewayTimeout, constant.ErrCodeChatTimeout, "Chat did not complete in time", err)
	case errors.Is(err, coze.ErrNoAssistantReply):
		return serverutils.NewAppError(fiber.StatusBadGateway, constant.ErrCodeChatServiceError, "Chat completed without a reply", err)
	case errors.Is(err, coze.ErrTransport), errors.Is(err, coze.ErrUpstream):
		return serverutils.NewAppError(fiber.StatusBadGateway, constant.ErrCodeChatServiceError, "Chat service unavailable", err)
	}
	return err
}
