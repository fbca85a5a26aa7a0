//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/bistroboss/bistro-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviews_CreateAndList(t *testing.T) {
	client := newTestClient(t)
	email, _ := registerTestUser(t, client)
	client.AuthenticateAs(t, email)

	name := testutil.RandomName("reviewer")
	resp, err := client.POST("/reviews", map[string]interface{}{
		"name":    name,
		"details": "The duck was outstanding.",
		"rating":  4.5,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		InsertedID *string `json:"insertedId"`
	}
	testutil.DecodeJSON(t, resp, &created)
	require.NotNil(t, created.InsertedID)

	// Listing is public
	public := newTestClient(t)
	resp, err = public.GET("/reviews")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var reviews []struct {
		ID     string  `json:"_id"`
		Name   string  `json:"name"`
		Rating float64 `json:"rating"`
	}
	testutil.DecodeJSON(t, resp, &reviews)

	found := false
	for _, rv := range reviews {
		if rv.ID == *created.InsertedID {
			found = true
			assert.Equal(t, name, rv.Name)
			assert.Equal(t, 4.5, rv.Rating)
		}
	}
	assert.True(t, found, "created review should appear in the listing")
}

func TestReviews_Create_RequiresToken(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.POST("/reviews", map[string]interface{}{
		"name":    "Anonymous",
		"details": "Sneaky praise.",
		"rating":  5,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestReviews_Create_RejectsOutOfRangeRating(t *testing.T) {
	client := newTestClient(t)
	email, _ := registerTestUser(t, client)
	client.AuthenticateAs(t, email)

	resp, err := client.POST("/reviews", map[string]interface{}{
		"name":    "Overenthusiast",
		"details": "Eleven out of ten.",
		"rating":  11,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestReviews_Delete(t *testing.T) {
	client := newTestClient(t)
	email, _ := registerTestUser(t, client)
	client.AuthenticateAs(t, email)

	resp, err := client.POST("/reviews", map[string]interface{}{
		"name":    testutil.RandomName("reviewer"),
		"details": "Soon to be removed.",
		"rating":  1.0,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		InsertedID *string `json:"insertedId"`
	}
	testutil.DecodeJSON(t, resp, &created)
	require.NotNil(t, created.InsertedID)

	// Regular users cannot delete
	resp, err = client.DELETE("/reviews/" + *created.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	admin := newTestClient(t)
	authenticateAsAdmin(t, admin)

	resp, err = admin.DELETE("/reviews/" + *created.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.Equal(t, int64(1), result.DeletedCount)
}
