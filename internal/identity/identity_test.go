package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specwiz/internal/config"
	"specwiz/internal/project"
)

func TestConfigProvider_Author(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Author.Name = "  Sam Rivera  "
	cfg.Author.Email = "sam@example.com"

	author, err := NewConfigProvider(cfg).Author()

	require.NoError(t, err)
	assert.Equal(t, project.Author{Name: "Sam Rivera", Email: "sam@example.com"}, author)
}

func TestConfigProvider_MissingName(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Author.Email = "sam@example.com"

	_, err := NewConfigProvider(cfg).Author()

	assert.ErrorIs(t, err, ErrNoAuthor)
}

func TestConfigProvider_NilConfig(t *testing.T) {
	_, err := NewConfigProvider(nil).Author()

	assert.ErrorIs(t, err, ErrNoAuthor)
}

func TestStatic_Author(t *testing.T) {
	want := project.Author{Name: "Test User", Email: "test@example.com"}

	author, err := Static{Value: want}.Author()

	require.NoError(t, err)
	assert.Equal(t, want, author)
}
