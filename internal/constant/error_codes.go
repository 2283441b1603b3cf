package constant

// Stable error codes the mobile client matches on. Do not rename.
const (
	ErrCodeBookNotFound        = "BOOK_NOT_FOUND"
	ErrCodeAIService           = "AI_SERVICE_ERROR"
	ErrCodeThemesInsert        = "THEMES_INSERT_ERROR"
	ErrCodeQuestionsInsert     = "QUESTIONS_INSERT_ERROR"
	ErrCodeInternal            = "INTERNAL_ERROR"
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeEmailTaken          = "EMAIL_TAKEN"
	ErrCodeInvalidCredentials  = "INVALID_CREDENTIALS"
	ErrCodeChatServiceError    = "CHAT_SERVICE_ERROR"
	ErrCodeChatTimeout         = "CHAT_TIMEOUT"
	ErrCodeConversationMissing = "CONVERSATION_NOT_FOUND"
	ErrCodeProgressNotFound    = "PROGRESS_NOT_FOUND"
)
