package repository

import (
	"context"

	"github.com/Sellaris/chat-frontend-journey/internal/model"
)

// Repository is the durable session store: the single source of truth for
// chat metadata, message history and credential profiles. Message lists are
// read and written wholesale (last writer wins); there is no per-message
// update path.
type Repository interface {
	ListChats(ctx context.Context) ([]model.Chat, error)
	GetChat(ctx context.Context, chatID string) (*model.Chat, error)
	CreateChat(ctx context.Context, agentID, title string) (*model.Chat, error)
	DeleteChat(ctx context.Context, chatID string) error

	GetMessages(ctx context.Context, chatID string) ([]model.Message, error)
	SaveMessages(ctx context.Context, chatID string, messages []model.Message) error

	SavedProfiles(ctx context.Context) ([]model.CredentialProfile, error)
	SaveProfiles(ctx context.Context, profiles []model.CredentialProfile) error
	ActiveCredential(ctx context.Context) (*model.ActiveCredential, error)
	SetActiveCredential(ctx context.Context, cred *model.ActiveCredential) error
	LegacyAPIKey(ctx context.Context) (string, error)
}
