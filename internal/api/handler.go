package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sellaris/chat-frontend-journey/internal/interfaces"
	"github.com/Sellaris/chat-frontend-journey/internal/model"
	"github.com/Sellaris/chat-frontend-journey/internal/persona"
	"github.com/Sellaris/chat-frontend-journey/internal/service"
)

// ChatHandler handles HTTP requests for chats and message turns.
type ChatHandler struct {
	service interfaces.ChatService
}

func NewChatHandler(svc interfaces.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// CreateChatRequest is the DTO for starting a new chat.
type CreateChatRequest struct {
	AgentID string `json:"agentId" validate:"required" example:"1"`
	Title   string `json:"title" validate:"omitempty,max=100" example:"New Chat"`
}

// sendMessageBody is the DTO for a new user utterance; the chat comes from
// the URL.
type sendMessageBody struct {
	Content string `json:"content" validate:"required"`
}

// GetAgents godoc
// @Summary      List agent personas
// @Description  Returns the selectable agent personas.
// @Tags         Agents
// @Produce      json
// @Success      200  {array}  persona.Persona
// @Router       /v1/agents [get]
func (h *ChatHandler) GetAgents(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, persona.All())
}

// GetChats godoc
// @Summary      List chats
// @Description  Returns all stored chats in storage order.
// @Tags         Chats
// @Produce      json
// @Success      200  {array}   model.Chat
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/chats [get]
func (h *ChatHandler) GetChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.service.ListChats(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	if chats == nil {
		chats = []model.Chat{}
	}
	respondWithJSON(w, http.StatusOK, chats)
}

// CreateChat godoc
// @Summary      Create a chat
// @Description  Creates a new chat for an agent. The title defaults to "New Chat".
// @Tags         Chats
// @Accept       json
// @Produce      json
// @Param        chatRequest  body      CreateChatRequest  true  "Agent and optional title"
// @Success      201          {object}  model.Chat
// @Failure      400          {object}  ErrorResponse
// @Router       /v1/chats [post]
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req CreateChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	chat, err := h.service.CreateChat(r.Context(), req.AgentID, req.Title)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, chat)
}

// GetMessages godoc
// @Summary      Get chat messages
// @Description  Returns a chat's message history. An empty chat is seeded with the agent's greeting.
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {array}   model.Message
// @Failure      404     {object}  ErrorResponse
// @Router       /v1/chats/{chatID}/messages [get]
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	messages, err := h.service.OpenChat(r.Context(), chatID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if messages == nil {
		messages = []model.Message{}
	}
	respondWithJSON(w, http.StatusOK, messages)
}

// DeleteChat godoc
// @Summary      Delete a chat
// @Description  Removes a chat and its message history. Idempotent.
// @Tags         Chats
// @Produce      json
// @Param        chatID  path      string  true  "Chat ID"
// @Success      200     {object}  StatusResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /v1/chats/{chatID} [delete]
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	if err := h.service.DeleteChat(r.Context(), chatID); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleStreamMessage godoc
// @Summary      Send a message
// @Description  Processes one user turn and streams progress as server-sent events: retrieval chunks, then the finalized assistant message.
// @Tags         Chats
// @Accept       json
// @Produce      text/event-stream
// @Param        chatID   path  string           true  "Chat ID"
// @Param        message  body  sendMessageBody  true  "Message content"
// @Success      200  {object}  model.StreamEvent "Stream of turn events"
// @Failure      400  {object}  ErrorResponse "Sent as a stream error event"
// @Router       /v1/chats/{chatID}/messages [post]
func (h *ChatHandler) HandleStreamMessage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	var body sendMessageBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("Error decoding request body for message stream", "error", err)
		sendStreamError(w, "Invalid request body")
		return
	}
	if err := validateRequest(body); err != nil {
		sendStreamError(w, err.Error())
		return
	}

	req := &service.SendMessageRequest{
		ChatID:  chi.URLParam(r, "chatID"),
		Content: body.Content,
	}

	// The request context is the turn's cancellation token: a client
	// disconnect (e.g. switching chats) cancels retrieval and completion.
	stream := make(chan model.StreamEvent)
	go h.service.HandleNewMessage(r.Context(), req, stream)

	for event := range stream {
		if r.Context().Err() != nil {
			slog.Info("Client disconnected during message stream.", "chat_id", req.ChatID)
			break
		}
		if err := writeStreamEvent(w, event); err != nil {
			slog.Warn("Could not write to message stream, client likely disconnected.", "error", err)
			break
		}
	}

	// The turn keeps sending until it closes the channel; after a
	// disconnect the remaining events must still be consumed or the turn
	// goroutine blocks on its next send.
	for range stream {
	}

	slog.Info("Finished streaming turn.", "chat_id", req.ChatID)
}
