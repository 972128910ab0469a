package model

import "time"

// Role values a message may carry. The retrieval pipeline only ever produces
// assistant messages; user messages come straight from the client.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Chat stores metadata about a conversation. The title is derived state: it
// is overwritten on every successful message save with the content of the
// most recent user message in the saved sequence.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	AgentID   string    `json:"agentId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Message stores a single message in a chat. DBResult and
// IsStreamingDBResult are populated only on assistant messages produced by
// the retrieval pipeline; IsStreamingDBResult is true exactly while the
// retrieval phase for that message is in flight and is always false in the
// persisted copy once the turn has finished.
type Message struct {
	ID                  string    `json:"id"`
	ChatID              string    `json:"chatId"`
	Content             string    `json:"content"`
	Role                string    `json:"role"`
	CreatedAt           time.Time `json:"createdAt"`
	DBResult            string    `json:"dbResult,omitempty"`
	IsStreamingDBResult bool      `json:"isStreamingDbResult,omitempty"`
}

// CredentialProfile is a named API key + base URL pair usable by the LLM
// client. Profiles are user-entered; at most one of them is active at a time.
type CredentialProfile struct {
	ProviderName string `json:"aiName"`
	APIKey       string `json:"apiKey"`
	APIBase      string `json:"apiBase"`
}

// ActiveCredential is the persisted shape of the currently selected key/base
// pair (the `choosed_api` entry).
type ActiveCredential struct {
	Key  string `json:"key"`
	Base string `json:"base"`
}

// StreamEvent is a single chunk in the server-sent turn stream. While the
// retrieval phase runs, DBChunk carries each piece of the query result in
// arrival order; the final event has Done set and carries the finalized
// assistant message.
type StreamEvent struct {
	DBChunk string   `json:"dbChunk,omitempty"`
	Done    bool     `json:"done,omitempty"`
	Message *Message `json:"message,omitempty"`
	Warning string   `json:"warning,omitempty"`
	Error   string   `json:"error,omitempty"`
}
