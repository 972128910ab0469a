package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/Sellaris/chat-frontend-journey/internal/errors"
	"github.com/Sellaris/chat-frontend-journey/internal/llm"
	"github.com/Sellaris/chat-frontend-journey/internal/model"
	"github.com/Sellaris/chat-frontend-journey/internal/persona"
	"github.com/Sellaris/chat-frontend-journey/internal/prompt"
	"github.com/Sellaris/chat-frontend-journey/internal/repository"
	"github.com/Sellaris/chat-frontend-journey/internal/retrieval"
)

// Body the placeholder assistant message carries while retrieval streams in.
const queryingNotice = "正在查询数据库... "

// ChatService drives one user turn through the two-phase pipeline: append
// the user message and a streaming placeholder, project retrieval chunks
// into the placeholder, compose the prompt, call the LLM, finalize and
// persist. It owns the in-memory copy of the in-flight assistant message;
// the repository owns the durable copy.
type ChatService struct {
	repo       repository.Repository
	retrieval  retrieval.Client
	llm        llm.Client
	creds      *CredentialService
	downMarker string
}

// SendMessageRequest is a new user utterance bound for an existing chat.
type SendMessageRequest struct {
	ChatID  string `json:"chatId" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func NewChatService(repo repository.Repository, retrievalClient retrieval.Client, llmClient llm.Client, creds *CredentialService, downMarker string) *ChatService {
	return &ChatService{
		repo:       repo,
		retrieval:  retrievalClient,
		llm:        llmClient,
		creds:      creds,
		downMarker: downMarker,
	}
}

// ListChats returns the stored chats in storage order. Callers wanting
// recency order sort by UpdatedAt themselves.
func (s *ChatService) ListChats(ctx context.Context) ([]model.Chat, error) {
	return s.repo.ListChats(ctx)
}

// CreateChat starts a new conversation for the given agent.
func (s *ChatService) CreateChat(ctx context.Context, agentID, title string) (*model.Chat, error) {
	chat, err := s.repo.CreateChat(ctx, agentID, title)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	return chat, nil
}

// DeleteChat removes a chat and its message list.
func (s *ChatService) DeleteChat(ctx context.Context, chatID string) error {
	slog.Info("Deleting chat", "chat_id", chatID)
	if err := s.repo.DeleteChat(ctx, chatID); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

// OpenChat returns a chat's message history. An empty chat is seeded with
// the persona's greeting as its first assistant message, persisted so
// reloads see the same opening.
func (s *ChatService) OpenChat(ctx context.Context, chatID string) ([]model.Message, error) {
	chat, err := s.repo.GetChat(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	messages, err := s.repo.GetMessages(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if len(messages) > 0 {
		return messages, nil
	}

	greeting := model.Message{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Content:   persona.ByID(chat.AgentID).Greeting,
		Role:      model.RoleAssistant,
		CreatedAt: time.Now().UTC(),
	}
	seeded := []model.Message{greeting}
	if err := s.repo.SaveMessages(ctx, chatID, seeded); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	return seeded, nil
}

// HandleNewMessage processes one turn and feeds progress to stream, closing
// it when the turn reaches a terminal state. Exactly two durable writes
// happen per turn regardless of chunk count: one appending the user message
// with the streaming placeholder, one persisting the finalized list.
func (s *ChatService) HandleNewMessage(ctx context.Context, req *SendMessageRequest, stream chan<- model.StreamEvent) {
	defer close(stream)

	// A turn without a resolvable credential must have no side effects,
	// so the check comes before anything is appended.
	cred, err := s.creds.Resolve(ctx)
	if err != nil {
		slog.Warn("Rejecting turn: no credential resolvable", "chat_id", req.ChatID)
		stream <- model.StreamEvent{Error: "API key is required to send a message"}
		return
	}

	chat, err := s.repo.GetChat(ctx, req.ChatID)
	if err != nil {
		slog.Error("Could not load chat for new message", "chat_id", req.ChatID, "error", err)
		stream <- model.StreamEvent{Error: "Could not find chat"}
		return
	}

	history, err := s.repo.GetMessages(ctx, req.ChatID)
	if err != nil {
		slog.Error("Could not load message history", "chat_id", req.ChatID, "error", err)
		stream <- model.StreamEvent{Error: "Could not load chat history"}
		return
	}

	now := time.Now().UTC()
	userMessage := model.Message{
		ID:        uuid.NewString(),
		ChatID:    req.ChatID,
		Content:   req.Content,
		Role:      model.RoleUser,
		CreatedAt: now,
	}
	placeholder := model.Message{
		ID:                  uuid.NewString(),
		ChatID:              req.ChatID,
		Content:             queryingNotice,
		Role:                model.RoleAssistant,
		CreatedAt:           now,
		DBResult:            "",
		IsStreamingDBResult: true,
	}

	working := make([]model.Message, 0, len(history)+2)
	working = append(working, history...)
	working = append(working, userMessage, placeholder)
	// The placeholder's position is resolved once and held for the whole
	// turn; chunks never search the list.
	idx := len(working) - 1

	if err := s.repo.SaveMessages(ctx, req.ChatID, working); err != nil {
		slog.Error("Could not persist user message", "chat_id", req.ChatID, "error", err)
		stream <- model.StreamEvent{Error: "Could not save message, history may be lost"}
		return
	}

	// Phase one: stream the database query result into the placeholder.
	// Chunk mutations are in-memory only; persistence happens once more at
	// finalize.
	dbResult, queryErr := s.retrieval.Query(ctx, req.Content, func(chunk string) {
		working[idx].DBResult += chunk
		stream <- model.StreamEvent{DBChunk: chunk}
	})
	if queryErr != nil {
		// A failed retrieval degrades to an empty context; the turn goes
		// on without it.
		slog.Warn("Retrieval query failed, continuing with empty context",
			"chat_id", req.ChatID, "error", queryErr)
		stream <- model.StreamEvent{Warning: "数据库查询失败，将在没有查询结果的情况下回答"}
		dbResult = ""
	}

	// The retrieval service reports a dead backend inside a nominally
	// successful stream; that is a semantic failure and the LLM must not
	// be called.
	if s.downMarker != "" && strings.Contains(dbResult, s.downMarker) {
		slog.Error("Retrieval backend reported unavailable", "chat_id", req.ChatID)
		s.finalizeAborted(ctx, req.ChatID, working, idx)
		stream <- model.StreamEvent{Error: apperrors.ErrBackendDown.Error()}
		return
	}

	// Phase two: compose and complete. The just-added user message is the
	// subject of the composed turn, not part of its history section.
	composed := prompt.Compose(persona.ByID(chat.AgentID), dbResult, history, req.Content)

	answer, err := s.llm.Complete(ctx, cred, composed)
	if err != nil {
		slog.Error("Chat completion failed", "chat_id", req.ChatID, "error", err)
		s.finalizeAborted(ctx, req.ChatID, working, idx)
		stream <- model.StreamEvent{Error: "Failed to get a response from the AI"}
		return
	}

	working[idx].Content = answer
	working[idx].IsStreamingDBResult = false

	if err := s.repo.SaveMessages(ctx, req.ChatID, working); err != nil {
		slog.Error("CRITICAL: could not persist finalized turn", "chat_id", req.ChatID, "error", err)
		stream <- model.StreamEvent{Error: "Could not save message, history may be lost"}
		return
	}

	final := working[idx]
	stream <- model.StreamEvent{Done: true, Message: &final}
}

// finalizeAborted lands a failed turn in its terminal state: the placeholder
// stays visible with whatever partial DBResult it accumulated, the streaming
// flag is cleared, and the list is persisted so the flag is never true at
// rest.
func (s *ChatService) finalizeAborted(ctx context.Context, chatID string, working []model.Message, idx int) {
	working[idx].IsStreamingDBResult = false
	if err := s.repo.SaveMessages(ctx, chatID, working); err != nil {
		slog.Error("Could not persist aborted turn", "chat_id", chatID, "error", err)
	}
}
