package coze

import "errors"

var (
	// ErrTransport marks network-level failures reaching the chat service.
	ErrTransport = errors.New("coze transport failure")

	// ErrUpstream marks a non-success response from the chat service.
	ErrUpstream = errors.New("coze upstream error")

	// ErrPollTimeout means a chat turn never reached a terminal state
	// within the attempt budget.
	ErrPollTimeout = errors.New("chat polling exceeded attempt budget")

	// ErrNoAssistantReply means a completed turn contained no answer-typed
	// assistant message.
	ErrNoAssistantReply = errors.New("no assistant reply found")
)
