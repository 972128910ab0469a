package interfaces

import (
	"context"

	"github.com/Sellaris/chat-frontend-journey/internal/model"
	"github.com/Sellaris/chat-frontend-journey/internal/service"
)

// This file defines the interfaces for our core services. The API layer
// depends on these instead of the concrete implementations, which keeps the
// layers decoupled and makes the handlers testable with mocks.

// ChatService is the contract for conversation logic: session access and the
// two-phase message turn.
type ChatService interface {
	ListChats(ctx context.Context) ([]model.Chat, error)
	CreateChat(ctx context.Context, agentID, title string) (*model.Chat, error)
	DeleteChat(ctx context.Context, chatID string) error
	OpenChat(ctx context.Context, chatID string) ([]model.Message, error)
	HandleNewMessage(ctx context.Context, req *service.SendMessageRequest, stream chan<- model.StreamEvent)
}

// CredentialService is the contract for managing API credential profiles.
type CredentialService interface {
	Profiles(ctx context.Context) (*service.ProfileList, error)
	AddProfile(ctx context.Context, profile model.CredentialProfile) error
	DeleteProfile(ctx context.Context, name string) error
	SelectProfile(ctx context.Context, name string) error
	Configured(ctx context.Context) bool
}
