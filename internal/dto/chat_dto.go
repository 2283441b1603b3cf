package dto

type CreateConversationResponse struct {
	ConversationId string `json:"conversationId"`
}

type SendChatRequest struct {
	Query          string `json:"query" validate:"required,min=1"`
	ConversationId string `json:"conversationId"`
}

type SendChatResponse struct {
	ChatId         string `json:"chatId"`
	ConversationId string `json:"conversationId"`
	Status         string `json:"status"`
}

type CompleteChatRequest struct {
	Query          string `json:"query" validate:"required,min=1"`
	ConversationId string `json:"conversationId"`
}

type CompleteChatResponse struct {
	ChatId         string `json:"chatId"`
	ConversationId string `json:"conversationId"`
	Status         string `json:"status"`
	Answer         string `json:"answer"`
}

type ChatStatusResponse struct {
	ChatId         string `json:"chatId"`
	ConversationId string `json:"conversationId"`
	Status         string `json:"status"`
}

type ChatMessageResponse struct {
	Id      string `json:"id"`
	Role    string `json:"role"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

type ChatMessagesResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}

type ConversationResponse struct {
	ConversationId string `json:"conversationId"`
}
