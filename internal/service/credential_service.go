package service

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/Sellaris/chat-frontend-journey/internal/errors"
	"github.com/Sellaris/chat-frontend-journey/internal/llm"
	"github.com/Sellaris/chat-frontend-journey/internal/model"
	"github.com/Sellaris/chat-frontend-journey/internal/repository"
)

// CredentialService manages the user-entered credential profiles and
// resolves the key/base pair for LLM calls. At most one profile is active;
// selecting a new one deactivates the previous.
type CredentialService struct {
	repo        repository.Repository
	defaultBase string
}

func NewCredentialService(repo repository.Repository, defaultBase string) *CredentialService {
	return &CredentialService{repo: repo, defaultBase: defaultBase}
}

// ProfileList is the credential surface shown to the client: the saved
// entries with keys masked, plus the name of the active one (empty when
// nothing is selected).
type ProfileList struct {
	Profiles []model.CredentialProfile `json:"profiles"`
	Active   string                    `json:"active,omitempty"`
}

// Profiles lists the saved entries with their API keys masked.
func (s *CredentialService) Profiles(ctx context.Context) (*ProfileList, error) {
	profiles, err := s.repo.SavedProfiles(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.repo.ActiveCredential(ctx)
	if err != nil {
		return nil, err
	}

	out := &ProfileList{Profiles: make([]model.CredentialProfile, len(profiles))}
	for i, p := range profiles {
		if active != nil && p.APIKey == active.Key && p.APIBase == active.Base {
			out.Active = p.ProviderName
		}
		p.APIKey = maskKey(p.APIKey)
		out.Profiles[i] = p
	}
	return out, nil
}

// AddProfile stores a new named entry. Names are the profile identity, so a
// duplicate is a conflict rather than a silent overwrite.
func (s *CredentialService) AddProfile(ctx context.Context, p model.CredentialProfile) error {
	profiles, err := s.repo.SavedProfiles(ctx)
	if err != nil {
		return err
	}
	for _, existing := range profiles {
		if existing.ProviderName == p.ProviderName {
			return fmt.Errorf("%w: profile %q already exists", apperrors.ErrConflict, p.ProviderName)
		}
	}
	profiles = append(profiles, p)
	if err := s.repo.SaveProfiles(ctx, profiles); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}
	return nil
}

// DeleteProfile removes an entry by name. Deleting the active entry also
// clears the selection.
func (s *CredentialService) DeleteProfile(ctx context.Context, name string) error {
	profiles, err := s.repo.SavedProfiles(ctx)
	if err != nil {
		return err
	}

	var removed *model.CredentialProfile
	kept := profiles[:0]
	for i := range profiles {
		if profiles[i].ProviderName == name {
			// Copy before the in-place filter below overwrites the
			// backing array.
			entry := profiles[i]
			removed = &entry
			continue
		}
		kept = append(kept, profiles[i])
	}
	if removed == nil {
		return fmt.Errorf("%w: profile %q", apperrors.ErrNotFound, name)
	}
	if err := s.repo.SaveProfiles(ctx, kept); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	active, err := s.repo.ActiveCredential(ctx)
	if err != nil {
		return err
	}
	if active != nil && active.Key == removed.APIKey && active.Base == removed.APIBase {
		slog.Info("Deleted the active credential profile, clearing selection", "profile", name)
		if err := s.repo.SetActiveCredential(ctx, nil); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
		}
	}
	return nil
}

// SelectProfile makes the named entry the active credential, replacing any
// previous selection.
func (s *CredentialService) SelectProfile(ctx context.Context, name string) error {
	profiles, err := s.repo.SavedProfiles(ctx)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		if p.ProviderName == name {
			cred := &model.ActiveCredential{Key: p.APIKey, Base: p.APIBase}
			if err := s.repo.SetActiveCredential(ctx, cred); err != nil {
				return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: profile %q", apperrors.ErrNotFound, name)
}

// Resolve produces the credential for one LLM call: active profile first,
// then the legacy single-key entry. The resolution itself is a pure
// function; this method only gathers its inputs.
func (s *CredentialService) Resolve(ctx context.Context) (llm.Credential, error) {
	active, err := s.repo.ActiveCredential(ctx)
	if err != nil {
		return llm.Credential{}, err
	}
	legacy, err := s.repo.LegacyAPIKey(ctx)
	if err != nil {
		return llm.Credential{}, err
	}
	return llm.ResolveCredential(active, legacy, s.defaultBase)
}

// Configured reports whether a credential is currently resolvable, without
// exposing it.
func (s *CredentialService) Configured(ctx context.Context) bool {
	_, err := s.Resolve(ctx)
	return err == nil
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return "********"
	}
	return "********" + key[len(key)-4:]
}
