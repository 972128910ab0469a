package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Sellaris/chat-frontend-journey/internal/api"
	apperrors "github.com/Sellaris/chat-frontend-journey/internal/errors"
	"github.com/Sellaris/chat-frontend-journey/internal/interfaces/mocks"
	"github.com/Sellaris/chat-frontend-journey/internal/model"
	"github.com/Sellaris/chat-frontend-journey/internal/service"
)

func newTestRouter(t *testing.T) (*mocks.MockChatService, *mocks.MockCredentialService, *chi.Mux) {
	t.Helper()
	chatService := mocks.NewMockChatService(t)
	credService := mocks.NewMockCredentialService(t)
	router := api.NewRouter(api.NewChatHandler(chatService), api.NewCredentialHandler(credService))
	return chatService, credService, router
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHealthz(t *testing.T) {
	_, _, router := newTestRouter(t)

	rr := doRequest(router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestGetAgents(t *testing.T) {
	_, _, router := newTestRouter(t)

	rr := doRequest(router, http.MethodGet, "/api/v1/agents", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var agents []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &agents))
	require.Len(t, agents, 4)
	assert.Equal(t, "General Assistant", agents[0]["name"])
	// Instruction and greeting templates stay server-side.
	assert.NotContains(t, rr.Body.String(), "数据库通用助手")
}

func TestGetChats(t *testing.T) {
	t.Run("returns stored chats", func(t *testing.T) {
		chatService, _, router := newTestRouter(t)
		chatService.On("ListChats", mock.Anything).Return([]model.Chat{
			{ID: "chat1", Title: "你好", AgentID: "1"},
		}, nil)

		rr := doRequest(router, http.MethodGet, "/api/v1/chats", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var chats []model.Chat
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &chats))
		require.Len(t, chats, 1)
		assert.Equal(t, "你好", chats[0].Title)
	})

	t.Run("empty store yields empty array", func(t *testing.T) {
		chatService, _, router := newTestRouter(t)
		chatService.On("ListChats", mock.Anything).Return(nil, nil)

		rr := doRequest(router, http.MethodGet, "/api/v1/chats", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		chatService, _, router := newTestRouter(t)
		chatService.On("ListChats", mock.Anything).Return(nil, errors.New("disk error"))

		rr := doRequest(router, http.MethodGet, "/api/v1/chats", "")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestCreateChat(t *testing.T) {
	t.Run("creates chat", func(t *testing.T) {
		chatService, _, router := newTestRouter(t)
		chatService.On("CreateChat", mock.Anything, "1", "").
			Return(&model.Chat{ID: "chat1", AgentID: "1", Title: "New Chat"}, nil)

		rr := doRequest(router, http.MethodPost, "/api/v1/chats", `{"agentId":"1"}`)
		require.Equal(t, http.StatusCreated, rr.Code)

		var chat model.Chat
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &chat))
		assert.Equal(t, "chat1", chat.ID)
	})

	t.Run("missing agent id", func(t *testing.T) {
		_, _, router := newTestRouter(t)

		rr := doRequest(router, http.MethodPost, "/api/v1/chats", `{"title":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, _, router := newTestRouter(t)

		rr := doRequest(router, http.MethodPost, "/api/v1/chats", `{not json`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid request payload")
	})
}

func TestGetMessages(t *testing.T) {
	t.Run("returns history", func(t *testing.T) {
		chatService, _, router := newTestRouter(t)
		chatService.On("OpenChat", mock.Anything, "chat1").Return([]model.Message{
			{ID: "m1", Role: model.RoleAssistant, Content: "您好！"},
		}, nil)

		rr := doRequest(router, http.MethodGet, "/api/v1/chats/chat1/messages", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var messages []model.Message
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &messages))
		require.Len(t, messages, 1)
		assert.Equal(t, "您好！", messages[0].Content)
	})

	t.Run("unknown chat", func(t *testing.T) {
		chatService, _, router := newTestRouter(t)
		chatService.On("OpenChat", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound)

		rr := doRequest(router, http.MethodGet, "/api/v1/chats/missing/messages", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteChat(t *testing.T) {
	chatService, _, router := newTestRouter(t)
	chatService.On("DeleteChat", mock.Anything, "chat1").Return(nil)

	rr := doRequest(router, http.MethodDelete, "/api/v1/chats/chat1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

// parseStreamEvents decodes the `data:` lines of an SSE body.
func parseStreamEvents(t *testing.T, body string) []model.StreamEvent {
	t.Helper()
	var events []model.StreamEvent
	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var ev model.StreamEvent
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev))
		events = append(events, ev)
	}
	return events
}

func TestHandleStreamMessage(t *testing.T) {
	t.Run("streams turn events", func(t *testing.T) {
		chatService, _, router := newTestRouter(t)
		chatService.On("HandleNewMessage", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				req := args.Get(1).(*service.SendMessageRequest)
				assert.Equal(t, "chat1", req.ChatID)
				assert.Equal(t, "你好", req.Content)

				stream := args.Get(2).(chan<- model.StreamEvent)
				stream <- model.StreamEvent{DBChunk: "行1"}
				stream <- model.StreamEvent{DBChunk: "行2"}
				stream <- model.StreamEvent{Done: true, Message: &model.Message{
					ID: "m2", Role: model.RoleAssistant, Content: "您好，有什么可以帮您？", DBResult: "行1行2",
				}}
				close(stream)
			})

		rr := doRequest(router, http.MethodPost, "/api/v1/chats/chat1/messages", `{"content":"你好"}`)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))

		events := parseStreamEvents(t, rr.Body.String())
		require.Len(t, events, 3)
		assert.Equal(t, "行1", events[0].DBChunk)
		assert.Equal(t, "行2", events[1].DBChunk)
		require.True(t, events[2].Done)
		assert.Equal(t, "您好，有什么可以帮您？", events[2].Message.Content)
	})

	t.Run("empty content rejected as stream error", func(t *testing.T) {
		chatService, _, router := newTestRouter(t)

		rr := doRequest(router, http.MethodPost, "/api/v1/chats/chat1/messages", `{"content":""}`)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "event: error")
		chatService.AssertNotCalled(t, "HandleNewMessage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("disconnect does not strand the turn", func(t *testing.T) {
		chatService, _, router := newTestRouter(t)

		turnDone := make(chan struct{})
		chatService.On("HandleNewMessage", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				stream := args.Get(2).(chan<- model.StreamEvent)
				for i := 0; i < 4; i++ {
					stream <- model.StreamEvent{DBChunk: "行"}
				}
				close(stream)
				close(turnDone)
			})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chats/chat1/messages",
			strings.NewReader(`{"content":"你好"}`)).WithContext(ctx)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(httptest.NewRecorder(), req)

		// The turn must run to completion even though the client went
		// away after the first event.
		select {
		case <-turnDone:
		case <-time.After(time.Second):
			t.Fatal("turn goroutine still blocked after client disconnect")
		}
	})

	t.Run("malformed body rejected as stream error", func(t *testing.T) {
		_, _, router := newTestRouter(t)

		rr := doRequest(router, http.MethodPost, "/api/v1/chats/chat1/messages", `{broken`)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "event: error")
		assert.Contains(t, rr.Body.String(), "Invalid request body")
	})
}

func TestCredentialEndpoints(t *testing.T) {
	t.Run("list profiles", func(t *testing.T) {
		_, credService, router := newTestRouter(t)
		credService.On("Profiles", mock.Anything).Return(&service.ProfileList{
			Profiles: []model.CredentialProfile{{ProviderName: "kimi", APIKey: "********7890"}},
			Active:   "kimi",
		}, nil)

		rr := doRequest(router, http.MethodGet, "/api/v1/credentials", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"active":"kimi"`)
	})

	t.Run("add profile", func(t *testing.T) {
		_, credService, router := newTestRouter(t)
		credService.On("AddProfile", mock.Anything, model.CredentialProfile{
			ProviderName: "kimi", APIKey: "sk-1", APIBase: "https://api.moonshot.cn/v1",
		}).Return(nil)

		rr := doRequest(router, http.MethodPost, "/api/v1/credentials",
			`{"aiName":"kimi","apiKey":"sk-1","apiBase":"https://api.moonshot.cn/v1"}`)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("add profile with invalid base url", func(t *testing.T) {
		_, _, router := newTestRouter(t)

		rr := doRequest(router, http.MethodPost, "/api/v1/credentials",
			`{"aiName":"kimi","apiKey":"sk-1","apiBase":"not a url"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate profile conflicts", func(t *testing.T) {
		_, credService, router := newTestRouter(t)
		credService.On("AddProfile", mock.Anything, mock.Anything).
			Return(apperrors.ErrConflict)

		rr := doRequest(router, http.MethodPost, "/api/v1/credentials",
			`{"aiName":"kimi","apiKey":"sk-1","apiBase":"https://api.moonshot.cn/v1"}`)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("delete unknown profile", func(t *testing.T) {
		_, credService, router := newTestRouter(t)
		credService.On("DeleteProfile", mock.Anything, "missing").Return(apperrors.ErrNotFound)

		rr := doRequest(router, http.MethodDelete, "/api/v1/credentials/missing", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("select profile", func(t *testing.T) {
		_, credService, router := newTestRouter(t)
		credService.On("SelectProfile", mock.Anything, "kimi").Return(nil)

		rr := doRequest(router, http.MethodPost, "/api/v1/credentials/kimi/select", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("status", func(t *testing.T) {
		_, credService, router := newTestRouter(t)
		credService.On("Configured", mock.Anything).Return(false)

		rr := doRequest(router, http.MethodGet, "/api/v1/credentials/status", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"configured":false}`, rr.Body.String())
	})
}
