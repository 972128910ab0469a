package llm

import (
	"fmt"

	apperrors "github.com/Sellaris/chat-frontend-journey/internal/errors"
	"github.com/Sellaris/chat-frontend-journey/internal/model"
)

// Credential is the immutable key/base pair the client authenticates with.
// It is resolved once per turn and passed by value; nothing in the request
// path mutates credential state.
type Credential struct {
	APIKey  string
	APIBase string
}

// ResolveCredential picks the credential for an LLM call: the actively
// selected profile wins, then the legacy single-key entry with the
// configured default base. If neither yields a key the call must not happen,
// so a configuration error is returned up front.
func ResolveCredential(active *model.ActiveCredential, legacyKey, defaultBase string) (Credential, error) {
	if active != nil && active.Key != "" {
		base := active.Base
		if base == "" {
			base = defaultBase
		}
		return Credential{APIKey: active.Key, APIBase: base}, nil
	}
	if legacyKey != "" {
		return Credential{APIKey: legacyKey, APIBase: defaultBase}, nil
	}
	return Credential{}, fmt.Errorf("%w: no active profile and no legacy key", apperrors.ErrConfiguration)
}
