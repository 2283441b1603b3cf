package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"bookquiz-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type countingCreator struct {
	calls int
	err   error
}

func (c *countingCreator) CreateConversation(ctx context.Context, userId string) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return fmt.Sprintf("conv-%s-%d", userId, c.calls), nil
}

func TestGetOrCreateReusesConversation(t *testing.T) {
	creator := &countingCreator{}
	mgr := NewManager(memory.NewConversationRepository(), creator, nopLogger{})

	first, err := mgr.GetOrCreate(context.Background(), "user-1")
	assert.NoError(t, err)
	second, err := mgr.GetOrCreate(context.Background(), "user-1")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, creator.calls)
}

func TestGetOrCreateSeparatesUsers(t *testing.T) {
	creator := &countingCreator{}
	mgr := NewManager(memory.NewConversationRepository(), creator, nopLogger{})

	a, _ := mgr.GetOrCreate(context.Background(), "user-a")
	b, _ := mgr.GetOrCreate(context.Background(), "user-b")

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, creator.calls)
}

func TestGetOrCreatePropagatesCreateFailure(t *testing.T) {
	creator := &countingCreator{err: errors.New("upstream down")}
	mgr := NewManager(memory.NewConversationRepository(), creator, nopLogger{})

	_, err := mgr.GetOrCreate(context.Background(), "user-1")
	assert.Error(t, err)

	// Nothing must be cached after a failed create.
	_, found := mgr.Get(context.Background(), "user-1")
	assert.False(t, found)
}

func TestClearForcesNewConversation(t *testing.T) {
	creator := &countingCreator{}
	mgr := NewManager(memory.NewConversationRepository(), creator, nopLogger{})

	first, _ := mgr.GetOrCreate(context.Background(), "user-1")
	mgr.Clear(context.Background(), "user-1")

	_, found := mgr.Get(context.Background(), "user-1")
	assert.False(t, found)

	second, _ := mgr.GetOrCreate(context.Background(), "user-1")
	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, creator.calls)
}
