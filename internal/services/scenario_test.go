package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/avoskres/parlor/internal/common"
	"github.com/avoskres/parlor/internal/models"
	"github.com/avoskres/parlor/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exercises the full storefront flow against a real migrated store:
// register, re-register, authenticate, seed, seasonal search, cart, checkout.
func TestStorefrontScenario(t *testing.T) {
	ctx := context.Background()

	store, err := storage.InitDatabase(ctx, filepath.Join(t.TempDir(), "parlor.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	auth := NewAuthService(store.DB, discardLogger())
	catalog := NewCatalogService(store.DB, 5, discardLogger())
	session := NewSession()

	// registration and login
	_, err = auth.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	user, err := auth.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.UserName)

	_, err = auth.Register(ctx, "alice", "pw2")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	session.Login(user.UserName)

	// catalog
	require.NoError(t, catalog.Seed(ctx, []models.Flavor{
		{Name: "Mango", Price: 2.5, Season: "Summer"},
		{Name: "Pumpkin", Price: 3.0, Season: "Winter"},
		{Name: "Vanilla", Price: 2.0, Season: "All"},
	}))

	got, err := catalog.Search(ctx, "Summer", "", 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Mango", got[0].Name)
	assert.Equal(t, "Vanilla", got[1].Name)

	// cart and checkout
	for _, f := range got {
		session.AddToCart(f.Name, f.Price)
	}
	total, err := session.Checkout()
	require.NoError(t, err)
	assert.InDelta(t, 4.5, total, 1e-9)

	_, err = session.Checkout()
	require.ErrorIs(t, err, common.ErrorEmptyCart)
}
