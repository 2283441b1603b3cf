package coze

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"bookquiz-be/internal/pkg/logger"
)

// Config carries the connection settings plus the polling budget. Polling
// uses a fixed interval, not exponential backoff; worst-case latency is
// bounded by PollMaxAttempts × PollInterval.
type Config struct {
	APIKey          string
	BaseURL         string
	BotID           string
	Timeout         time.Duration
	PollMaxAttempts int
	PollInterval    time.Duration
}

type Client struct {
	cfg    Config
	client *http.Client
	log    logger.ILogger
}

func NewClient(cfg Config, log logger.ILogger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.coze.com"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.PollMaxAttempts == 0 {
		cfg.PollMaxAttempts = 30
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = 2 * time.Second
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	fullURL := c.cfg.BaseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.cfg.APIKey))

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	respBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, string(respBytes))
	}

	if out != nil {
		if err := json.Unmarshal(respBytes, out); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", ErrUpstream, err)
		}
	}
	return nil
}

type chatRequest struct {
	BotID           string `json:"bot_id"`
	UserID          string `json:"user_id"`
	ConversationID  string `json:"conversation_id,omitempty"`
	Query           string `json:"query,omitempty"`
	Stream          bool   `json:"stream"`
	AutoSaveHistory bool   `json:"auto_save_history"`
}

type chatResponse struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversation_id"`
	Status         string     `json:"status"`
	CreatedAt      int64      `json:"created_at"`
	LastError      *ChatError `json:"last_error"`
}

// CreateConversation opens a fresh conversation for the user and returns
// its id. The mapping is the caller's to keep; this client is stateless.
func (c *Client) CreateConversation(ctx context.Context, userId string) (string, error) {
	var resp chatResponse
	err := c.doJSON(ctx, http.MethodPost, "/v3/chat", nil, chatRequest{
		BotID:           c.cfg.BotID,
		UserID:          userId,
		Stream:          false,
		AutoSaveHistory: true,
	}, &resp)
	if err != nil {
		return "", err
	}

	c.log.Info("coze", "Conversation created", map[string]interface{}{
		"user_id":         userId,
		"conversation_id": resp.ConversationID,
	})
	return resp.ConversationID, nil
}

// Chat submits one turn into an existing conversation and returns the chat
// id plus initial status without waiting for completion.
func (c *Client) Chat(ctx context.Context, userId, conversationId, message string) (*ChatResult, error) {
	var resp chatResponse
	err := c.doJSON(ctx, http.MethodPost, "/v3/chat", nil, chatRequest{
		BotID:           c.cfg.BotID,
		UserID:          userId,
		ConversationID:  conversationId,
		Query:           message,
		Stream:          false,
		AutoSaveHistory: true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &ChatResult{
		ConversationID: conversationId,
		ChatID:         resp.ID,
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt,
		LastError:      resp.LastError,
	}, nil
}

// RetrieveStatus fetches the current lifecycle status of a chat turn.
func (c *Client) RetrieveStatus(ctx context.Context, conversationId, chatId string) (*ChatStatus, error) {
	query := url.Values{}
	query.Set("conversation_id", conversationId)
	query.Set("chat_id", chatId)

	var status ChatStatus
	if err := c.doJSON(ctx, http.MethodGet, "/v3/chat/retrieve", query, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

type messageListResponse struct {
	Data []Message `json:"data"`
}

// ListMessages returns every message of a chat turn in service order.
func (c *Client) ListMessages(ctx context.Context, conversationId, chatId string) ([]Message, error) {
	query := url.Values{}
	query.Set("conversation_id", conversationId)
	query.Set("chat_id", chatId)

	var resp messageListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v3/chat/message/list", query, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return []Message{}, nil
	}
	return resp.Data, nil
}

// PollUntilTerminal fetches the turn status until it becomes terminal,
// sleeping a fixed interval between attempts. Transient fetch errors are
// retried within the same attempt budget. A failed terminal status is
// returned as-is; deciding what to do with it is the caller's business.
func (c *Client) PollUntilTerminal(ctx context.Context, conversationId, chatId string) (*ChatStatus, error) {
	var lastErr error

	for attempt := 0; attempt < c.cfg.PollMaxAttempts; attempt++ {
		status, err := c.RetrieveStatus(ctx, conversationId, chatId)
		if err != nil {
			lastErr = err
			c.log.Warn("coze", "Poll attempt failed", map[string]interface{}{
				"attempt": attempt + 1,
				"max":     c.cfg.PollMaxAttempts,
				"error":   err.Error(),
			})
		} else {
			c.log.Debug("coze", "Poll status", map[string]interface{}{
				"attempt": attempt + 1,
				"max":     c.cfg.PollMaxAttempts,
				"status":  status.Status,
			})
			if IsTerminalStatus(status.Status) {
				return status, nil
			}
		}

		// Skip the final sleep: the budget is attempts, not elapsed time.
		if attempt == c.cfg.PollMaxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.cfg.PollInterval):
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: last error: %v", ErrPollTimeout, lastErr)
	}
	return nil, ErrPollTimeout
}

// LastAssistantAnswer extracts the user-visible reply from a completed
// turn's message list.
func LastAssistantAnswer(messages []Message) (string, error) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleAssistant && messages[i].Type == MessageTypeAnswer {
			return messages[i].Content, nil
		}
	}
	return "", ErrNoAssistantReply
}
