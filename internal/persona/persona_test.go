package persona_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sellaris/chat-frontend-journey/internal/persona"
)

func TestByID(t *testing.T) {
	p := persona.ByID("2")
	assert.Equal(t, "Code Helper", p.Name)
	assert.NotEmpty(t, p.Instruction)
	assert.NotEmpty(t, p.Greeting)

	// Unknown and empty identifiers resolve to the fallback variant.
	assert.Equal(t, persona.Default, persona.ByID("99"))
	assert.Equal(t, persona.Default, persona.ByID(""))
}

func TestAll(t *testing.T) {
	all := persona.All()
	require.Len(t, all, 4)
	for i, p := range all {
		assert.NotEmpty(t, p.ID, "persona %d", i)
		assert.NotEmpty(t, p.Name, "persona %d", i)
	}

	// All returns a copy; callers cannot mutate the catalog.
	all[0].Name = "mutated"
	assert.NotEqual(t, "mutated", persona.All()[0].Name)
}
