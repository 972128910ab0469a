package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Sellaris/chat-frontend-journey/internal/model"
)

// Storage keys. Values are JSON documents except the legacy API key, which
// is stored raw. The key shapes mirror the browser-era storage contract the
// frontend still understands.
const (
	keyChats        = "chats"
	keyChatPrefix   = "chat_"
	keySavedAPIs    = "savedApis"
	keyActiveCred   = "choosed_api"
	keyLegacyAPIKey = "chat-api-key"
)

const defaultChatTitle = "New Chat"

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

// querier is satisfied by both *sql.DB and *sql.Tx so the kv helpers can run
// inside or outside a transaction.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func getValue(ctx context.Context, q querier, key string) (string, bool, error) {
	var value string
	err := q.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("could not read key %q: %w", key, err)
	}
	return value, true, nil
}

func setValue(ctx context.Context, q querier, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := q.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("could not write key %q: %w", key, err)
	}
	return nil
}

func deleteValue(ctx context.Context, q querier, key string) error {
	if _, err := q.ExecContext(ctx, "DELETE FROM kv_store WHERE key = ?", key); err != nil {
		return fmt.Errorf("could not delete key %q: %w", key, err)
	}
	return nil
}

// decodeValue unmarshals a stored JSON document. A malformed value is logged
// and discarded rather than propagated: the store treats garbled prior state
// as empty.
func decodeValue(key, raw string, v any) bool {
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		slog.Warn("Discarding malformed stored value", "key", key, "error", err)
		return false
	}
	return true
}

func (r *sqliteRepository) ListChats(ctx context.Context) ([]model.Chat, error) {
	raw, ok, err := getValue(ctx, r.db, keyChats)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var chats []model.Chat
	if !decodeValue(keyChats, raw, &chats) {
		return nil, nil
	}
	return chats, nil
}

func (r *sqliteRepository) GetChat(ctx context.Context, chatID string) (*model.Chat, error) {
	chats, err := r.ListChats(ctx)
	if err != nil {
		return nil, err
	}
	for i := range chats {
		if chats[i].ID == chatID {
			return &chats[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *sqliteRepository) CreateChat(ctx context.Context, agentID, title string) (*model.Chat, error) {
	if title == "" {
		title = defaultChatTitle
	}
	now := time.Now().UTC()
	chat := model.Chat{
		ID:        uuid.NewString(),
		Title:     title,
		AgentID:   agentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	chats, err := r.ListChats(ctx)
	if err != nil {
		return nil, err
	}
	chats = append(chats, chat)
	if err := r.writeChats(ctx, r.db, chats); err != nil {
		return nil, err
	}
	return &chat, nil
}

// DeleteChat removes both the chat's message list and its metadata entry in
// one transaction. Deleting a chat that does not exist is not an error.
func (r *sqliteRepository) DeleteChat(ctx context.Context, chatID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteValue(ctx, tx, keyChatPrefix+chatID); err != nil {
		return err
	}

	raw, ok, err := getValue(ctx, tx, keyChats)
	if err != nil {
		return err
	}
	if ok {
		var chats []model.Chat
		if decodeValue(keyChats, raw, &chats) {
			kept := chats[:0]
			for _, c := range chats {
				if c.ID != chatID {
					kept = append(kept, c)
				}
			}
			if err := r.writeChats(ctx, tx, kept); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// GetMessages returns the stored message list for a chat. A chat with no
// stored messages, or with a garbled stored list, yields an empty sequence
// rather than an error.
func (r *sqliteRepository) GetMessages(ctx context.Context, chatID string) ([]model.Message, error) {
	key := keyChatPrefix + chatID
	raw, ok, err := getValue(ctx, r.db, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var messages []model.Message
	if !decodeValue(key, raw, &messages) {
		return nil, nil
	}
	return messages, nil
}

// SaveMessages replaces the entire stored message list for a chat, then
// recomputes the chat title from the last user-role message in the given
// sequence and bumps the chat's updatedAt. Saving an empty sequence is a
// no-op so a stored history can never be wiped by accident.
func (r *sqliteRepository) SaveMessages(ctx context.Context, chatID string, messages []model.Message) error {
	if len(messages) == 0 {
		return nil
	}

	payload, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("could not marshal messages: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := setValue(ctx, tx, keyChatPrefix+chatID, string(payload)); err != nil {
		return err
	}

	if err := r.touchChat(ctx, tx, chatID, lastUserContent(messages)); err != nil {
		return err
	}

	return tx.Commit()
}

// touchChat updates the chat's derived title and updatedAt inside the save
// transaction. A missing metadata entry is tolerated: the message list is
// still saved.
func (r *sqliteRepository) touchChat(ctx context.Context, tx *sql.Tx, chatID, title string) error {
	raw, ok, err := getValue(ctx, tx, keyChats)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	var chats []model.Chat
	if !decodeValue(keyChats, raw, &chats) {
		return nil
	}
	for i := range chats {
		if chats[i].ID == chatID {
			if title != "" {
				chats[i].Title = title
			}
			chats[i].UpdatedAt = time.Now().UTC()
			return r.writeChats(ctx, tx, chats)
		}
	}
	return nil
}

func (r *sqliteRepository) writeChats(ctx context.Context, q querier, chats []model.Chat) error {
	payload, err := json.Marshal(chats)
	if err != nil {
		return fmt.Errorf("could not marshal chat list: %w", err)
	}
	return setValue(ctx, q, keyChats, string(payload))
}

func lastUserContent(messages []model.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == model.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}

func (r *sqliteRepository) SavedProfiles(ctx context.Context) ([]model.CredentialProfile, error) {
	raw, ok, err := getValue(ctx, r.db, keySavedAPIs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var profiles []model.CredentialProfile
	if !decodeValue(keySavedAPIs, raw, &profiles) {
		return nil, nil
	}
	return profiles, nil
}

func (r *sqliteRepository) SaveProfiles(ctx context.Context, profiles []model.CredentialProfile) error {
	payload, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("could not marshal credential profiles: %w", err)
	}
	return setValue(ctx, r.db, keySavedAPIs, string(payload))
}

// ActiveCredential returns the selected key/base pair, or nil when nothing
// is selected (or the stored entry is garbled).
func (r *sqliteRepository) ActiveCredential(ctx context.Context) (*model.ActiveCredential, error) {
	raw, ok, err := getValue(ctx, r.db, keyActiveCred)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var cred model.ActiveCredential
	if !decodeValue(keyActiveCred, raw, &cred) {
		return nil, nil
	}
	return &cred, nil
}

// SetActiveCredential stores the selected pair; a nil credential clears the
// selection.
func (r *sqliteRepository) SetActiveCredential(ctx context.Context, cred *model.ActiveCredential) error {
	if cred == nil {
		return deleteValue(ctx, r.db, keyActiveCred)
	}
	payload, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("could not marshal active credential: %w", err)
	}
	return setValue(ctx, r.db, keyActiveCred, string(payload))
}

// LegacyAPIKey returns the single-key entry kept for compatibility with
// histories written before credential profiles existed. The value is stored
// raw, not as JSON.
func (r *sqliteRepository) LegacyAPIKey(ctx context.Context) (string, error) {
	raw, _, err := getValue(ctx, r.db, keyLegacyAPIKey)
	if err != nil {
		return "", err
	}
	return raw, nil
}
