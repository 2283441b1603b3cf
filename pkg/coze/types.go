package coze

// Chat turn statuses as reported by the chat service. A turn is terminal
// once it reaches completed, failed or requires_action.
const (
	StatusQueued         = "queued"
	StatusInProgress     = "in_progress"
	StatusCompleted      = "completed"
	StatusFailed         = "failed"
	StatusRequiresAction = "requires_action"
)

// IsTerminalStatus reports whether polling can stop for this status.
func IsTerminalStatus(status string) bool {
	switch status {
	case StatusCompleted, StatusFailed, StatusRequiresAction:
		return true
	}
	return false
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	// Only answer-typed assistant messages are the user-visible reply;
	// other types carry tool traces and follow-up suggestions.
	MessageTypeAnswer = "answer"
)

type ChatError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// ChatResult is the immediate response to a submitted chat turn.
type ChatResult struct {
	ConversationID string     `json:"conversation_id"`
	ChatID         string     `json:"chat_id"`
	Status         string     `json:"status"`
	CreatedAt      int64      `json:"created_at"`
	LastError      *ChatError `json:"last_error,omitempty"`
}

// ChatStatus is one snapshot of a turn's lifecycle from the status endpoint.
type ChatStatus struct {
	Status    string     `json:"status"`
	LastError *ChatError `json:"last_error,omitempty"`
}

type Message struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Type    string `json:"type"`
	Content string `json:"content"`
}
