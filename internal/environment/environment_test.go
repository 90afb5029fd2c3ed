package environment

import (
	"aggregat4/clientenv/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	env := Default()
	assert.False(t, env.Production())
	assert.Equal(t, "http://127.0.0.1:5000", env.ApiServerUrl())
	assert.Equal(t, "almmello-coffee-shop.us", env.IdentityProvider().DomainPrefix())
	assert.Equal(t, "cshop", env.IdentityProvider().Audience())
	assert.Equal(t, "oYQXEqAcKNFo1tZBM44zZaDovcIrS8tO", env.IdentityProvider().ClientId())
	assert.Equal(t, "http://localhost:8100", env.IdentityProvider().CallbackUrl())
}

func TestDefaultIsSharedInstance(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Same(t, Default(), DefaultHolder().Current())
}

func TestHolder(t *testing.T) {
	prod := domain.NewEnvironment(true, "https://api.example.com", domain.NewIdentityProvider("example.eu", "api", "client", "https://app.example.com"))
	environments := map[string]*domain.Environment{"development": Default(), "production": prod}

	holder, err := NewHolder("production", environments)
	require.NoError(t, err)

	delete(environments, "development")

	assert.Same(t, prod, holder.Current())
	assert.Equal(t, "production", holder.Selected())
	assert.Equal(t, []string{"development", "production"}, holder.Names())

	dev, err := holder.Get("development")
	require.NoError(t, err)
	assert.Same(t, Default(), dev)

	_, err = holder.Get("staging")
	assert.ErrorIs(t, err, ErrUnknownEnvironment)
}

func TestHolderRejectsUnknownSelection(t *testing.T) {
	_, err := NewHolder("staging", map[string]*domain.Environment{"development": Default()})
	assert.ErrorIs(t, err, ErrUnknownEnvironment)
}

func TestHolderRejectsNilEnvironment(t *testing.T) {
	_, err := NewHolder("development", map[string]*domain.Environment{"development": nil})
	assert.Error(t, err)
}
