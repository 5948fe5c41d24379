package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"empathos/backend/internal/api/handler"
	"empathos/backend/internal/models"
	"empathos/backend/internal/storage"
)

// dialWS upgrades against a live test server, carrying the session cookie.
func dialWS(t *testing.T, srv *httptest.Server, path, cookie string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	header := http.Header{}
	if cookie != "" {
		header.Set("Cookie", handler.SessionCookie+"="+cookie)
	}
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	return conn
}

type chatFrame struct {
	Message   string `json:"message"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
	Error     string `json:"error"`
}

func TestChatWS_ExchangeRoundTrip(t *testing.T) {
	e := newEnv(t)
	token := e.openSession(t, &models.User{ID: 7, Username: "ada", Role: models.RoleIndividual})

	var saved *models.ChatMessage
	e.store.On("CreateChatMessage", mock.AnythingOfType("*models.ChatMessage")).
		Run(func(args mock.Arguments) { saved = args.Get(0).(*models.ChatMessage) }).
		Return(nil)
	e.store.On("PublishChatEvent", mock.AnythingOfType("storage.ChatEvent")).Return(nil)

	srv := httptest.NewServer(e.router)
	defer srv.Close()
	conn := dialWS(t, srv, "/ws/chat", token)

	require.NoError(t, conn.WriteJSON(map[string]string{"message": "hello"}))

	var frame chatFrame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "hello", frame.Message)
	assert.Equal(t, "We hear you.", frame.Response)
	assert.NotEmpty(t, frame.Timestamp)
	assert.Empty(t, frame.Error)

	// The socket shares the persistence path with the HTTP endpoint.
	require.NotNil(t, saved)
	assert.Equal(t, uint(7), saved.UserID)
	assert.Equal(t, "hello", saved.Message)
}

func TestChatWS_ErrorFrames(t *testing.T) {
	e := newEnv(t)
	token := e.openSession(t, &models.User{ID: 7, Username: "ada", Role: models.RoleIndividual})

	srv := httptest.NewServer(e.router)
	defer srv.Close()
	conn := dialWS(t, srv, "/ws/chat", token)

	// An empty message is rejected without reaching the store, and the
	// connection stays usable afterwards.
	require.NoError(t, conn.WriteJSON(map[string]string{"message": ""}))
	var frame chatFrame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "message is required", frame.Error)
	e.store.AssertNotCalled(t, "CreateChatMessage", mock.Anything)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "invalid frame", frame.Error)
}

func TestChatWS_RejectsUnauthenticatedHandshake(t *testing.T) {
	e := newEnv(t)
	srv := httptest.NewServer(e.router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.Nil(t, conn)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestChatWS_PlainRequestNotUpgraded(t *testing.T) {
	e := newEnv(t)
	token := e.openSession(t, &models.User{ID: 7, Username: "ada", Role: models.RoleIndividual})

	// A non-websocket GET fails the handshake; the upgrader answers it
	// once and the handler must not write a second response.
	rec := e.do(http.MethodGet, "/ws/chat", nil, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOversightWS_ForwardsChatEvents(t *testing.T) {
	e := newEnv(t)
	token := e.openSession(t, &models.User{ID: 3, Username: "gov", Role: models.RoleAuthority})

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	events := storage.NewStorageService(nil, rdb)

	e.store.On("SubscribeChatEvents").Return(events.SubscribeChatEvents())

	srv := httptest.NewServer(e.router)
	defer srv.Close()
	conn := dialWS(t, srv, "/ws/oversight", token)

	require.NoError(t, events.PublishChatEvent(storage.ChatEvent{
		UserID:   7,
		Username: "ada",
		Message:  "hello",
		Response: "We hear you.",
	}))

	var event storage.ChatEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, uint(7), event.UserID)
	assert.Equal(t, "ada", event.Username)
	assert.Equal(t, "hello", event.Message)
	assert.Equal(t, "We hear you.", event.Response)
}

func TestOversightWS_RequiresAuthorityRole(t *testing.T) {
	e := newEnv(t)
	token := e.openSession(t, &models.User{ID: 7, Username: "ada", Role: models.RoleIndividual})

	srv := httptest.NewServer(e.router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/oversight"
	header := http.Header{}
	header.Set("Cookie", handler.SessionCookie+"="+token)
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.Error(t, err)
	require.Nil(t, conn)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	e.store.AssertNotCalled(t, "SubscribeChatEvents")
}
