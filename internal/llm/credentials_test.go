package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Sellaris/chat-frontend-journey/internal/errors"
	"github.com/Sellaris/chat-frontend-journey/internal/llm"
	"github.com/Sellaris/chat-frontend-journey/internal/model"
)

const defaultBase = "https://api.moonshot.cn/v1"

func TestResolveCredential_ActiveProfileWins(t *testing.T) {
	active := &model.ActiveCredential{Key: "sk-active", Base: "https://example.com/v1"}

	cred, err := llm.ResolveCredential(active, "sk-legacy", defaultBase)
	require.NoError(t, err)
	assert.Equal(t, "sk-active", cred.APIKey)
	assert.Equal(t, "https://example.com/v1", cred.APIBase)
}

func TestResolveCredential_ActiveWithoutBaseUsesDefault(t *testing.T) {
	active := &model.ActiveCredential{Key: "sk-active"}

	cred, err := llm.ResolveCredential(active, "", defaultBase)
	require.NoError(t, err)
	assert.Equal(t, defaultBase, cred.APIBase)
}

func TestResolveCredential_LegacyFallback(t *testing.T) {
	// An active entry with an empty key does not count as configured.
	cred, err := llm.ResolveCredential(&model.ActiveCredential{}, "sk-legacy", defaultBase)
	require.NoError(t, err)
	assert.Equal(t, "sk-legacy", cred.APIKey)
	assert.Equal(t, defaultBase, cred.APIBase)

	cred, err = llm.ResolveCredential(nil, "sk-legacy", defaultBase)
	require.NoError(t, err)
	assert.Equal(t, "sk-legacy", cred.APIKey)
}

func TestResolveCredential_NothingConfigured(t *testing.T) {
	_, err := llm.ResolveCredential(nil, "", defaultBase)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}
