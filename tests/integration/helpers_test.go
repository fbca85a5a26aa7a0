//go:build integration

package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/bistroboss/bistro-api/internal/testutil"
	"github.com/stretchr/testify/require"
)

const adminEmail = "admin@example.com"

// authenticateAsAdmin seeds the admin account and obtains a token for it.
// Admin status lives in the users table, not in the token, so the seed
// takes effect immediately.
func authenticateAsAdmin(t *testing.T, client *testutil.Client) {
	t.Helper()

	_, err := testDB.Exec(context.Background(),
		`INSERT INTO users (email, name, role) VALUES ($1, 'Admin', 'admin')
		 ON CONFLICT (email) DO UPDATE SET role = 'admin'`,
		adminEmail,
	)
	require.NoError(t, err)

	client.AuthenticateAs(t, adminEmail)
}

// registerTestUser registers a fresh user and returns its email and id.
func registerTestUser(t *testing.T, client *testutil.Client) (email, id string) {
	t.Helper()

	email = testutil.RandomEmail()
	resp, err := client.POST("/users", map[string]string{
		"email": email,
		"name":  "Test User",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		InsertedID *string `json:"insertedId"`
	}
	testutil.DecodeJSON(t, resp, &result)
	require.NotNil(t, result.InsertedID)
	return email, *result.InsertedID
}

// createTestMenuItem creates a menu item as admin and returns its id.
func createTestMenuItem(t *testing.T, client *testutil.Client, name, category, price string) string {
	t.Helper()

	resp, err := client.POST("/menu", map[string]string{
		"name":     name,
		"category": category,
		"price":    price,
		"recipe":   "test recipe",
		"image":    "test.png",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		InsertedID *string `json:"insertedId"`
	}
	testutil.DecodeJSON(t, resp, &result)
	require.NotNil(t, result.InsertedID)
	return *result.InsertedID
}

// addTestCartItem adds a snapshot of the menu item to the authenticated
// user's cart and returns the cart item id.
func addTestCartItem(t *testing.T, client *testutil.Client, menuItemID, name, price string) string {
	t.Helper()

	resp, err := client.POST("/carts", map[string]string{
		"menuId": menuItemID,
		"name":   name,
		"price":  price,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		InsertedID *string `json:"insertedId"`
	}
	testutil.DecodeJSON(t, resp, &result)
	require.NotNil(t, result.InsertedID)
	return *result.InsertedID
}
