package chatbot_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"empathos/backend/internal/apperrors"
	"empathos/backend/internal/chatbot"
	"empathos/backend/internal/models"
	"empathos/backend/internal/storage"
	"empathos/backend/internal/storage/mocks"
)

// stubResponder is a deterministic Responder for tests; it proves the
// policy is swappable without touching persistence.
type stubResponder struct {
	reply string
}

func (s stubResponder) Respond(message string) string { return s.reply }

func TestSend_PersistsPairAtomically(t *testing.T) {
	store := new(mocks.MockStorage)
	var saved *models.ChatMessage
	store.On("CreateChatMessage", mock.AnythingOfType("*models.ChatMessage")).
		Run(func(args mock.Arguments) { saved = args.Get(0).(*models.ChatMessage) }).
		Return(nil)
	store.On("PublishChatEvent", mock.AnythingOfType("storage.ChatEvent")).Return(nil)

	svc := chatbot.NewService(store, stubResponder{reply: "I hear you."})
	exchange, err := svc.Send(9, "ada", "hello")
	require.NoError(t, err)

	// Message and response reach storage together in one record.
	require.NotNil(t, saved)
	assert.Equal(t, uint(9), saved.UserID)
	assert.Equal(t, "hello", saved.Message)
	assert.Equal(t, "I hear you.", saved.Response)

	assert.Equal(t, "hello", exchange.Message)
	assert.Equal(t, "I hear you.", exchange.Response)

	// The returned timestamp parses in the wire layout.
	_, err = time.Parse(chatbot.TimestampLayout, exchange.Timestamp)
	assert.NoError(t, err)
	store.AssertNumberOfCalls(t, "CreateChatMessage", 1)
}

func TestSend_EmptyMessage(t *testing.T) {
	store := new(mocks.MockStorage)
	svc := chatbot.NewService(store, stubResponder{reply: "unused"})

	_, err := svc.Send(9, "ada", "")

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	store.AssertNotCalled(t, "CreateChatMessage", mock.Anything)
	store.AssertNotCalled(t, "PublishChatEvent", mock.Anything)
}

func TestSend_EventPublishIsBestEffort(t *testing.T) {
	store := new(mocks.MockStorage)
	store.On("CreateChatMessage", mock.AnythingOfType("*models.ChatMessage")).Return(nil)
	store.On("PublishChatEvent", mock.AnythingOfType("storage.ChatEvent")).Return(errors.New("redis down"))

	svc := chatbot.NewService(store, stubResponder{reply: "ok"})
	exchange, err := svc.Send(9, "ada", "hello")

	// A dead event feed never fails an already-persisted exchange.
	require.NoError(t, err)
	assert.Equal(t, "ok", exchange.Response)
}

func TestSend_EventCarriesUsername(t *testing.T) {
	store := new(mocks.MockStorage)
	store.On("CreateChatMessage", mock.AnythingOfType("*models.ChatMessage")).Return(nil)

	var event storage.ChatEvent
	store.On("PublishChatEvent", mock.AnythingOfType("storage.ChatEvent")).
		Run(func(args mock.Arguments) { event = args.Get(0).(storage.ChatEvent) }).
		Return(nil)

	svc := chatbot.NewService(store, stubResponder{reply: "noted"})
	_, err := svc.Send(9, "ada", "hello")
	require.NoError(t, err)

	assert.Equal(t, uint(9), event.UserID)
	assert.Equal(t, "ada", event.Username)
	assert.Equal(t, "hello", event.Message)
	assert.Equal(t, "noted", event.Response)
}

func TestHistoryForUser_DefaultLimit(t *testing.T) {
	store := new(mocks.MockStorage)
	store.On("GetChatHistoryForUser", uint(9), 20).Return([]models.ChatMessage{}, nil)

	svc := chatbot.NewService(store, stubResponder{})
	_, err := svc.HistoryForUser(9, 0)

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestRecentGlobal_DefaultLimit(t *testing.T) {
	store := new(mocks.MockStorage)
	store.On("GetRecentChatMessages", 10).Return([]storage.ChatMessageWithUser{}, nil)

	svc := chatbot.NewService(store, stubResponder{})
	_, err := svc.RecentGlobal(0)

	require.NoError(t, err)
	store.AssertExpectations(t)
}
