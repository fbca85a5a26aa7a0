//go:build integration

package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/bistroboss/bistro-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddListDelete(t *testing.T) {
	admin := newTestClient(t)
	authenticateAsAdmin(t, admin)
	menuItemID := createTestMenuItem(t, admin, testutil.RandomName("pizza"), "pizza", "11.00")

	client := newTestClient(t)
	email, _ := registerTestUser(t, client)
	client.AuthenticateAs(t, email)

	cartItemID := addTestCartItem(t, client, menuItemID, "Margherita", "11.00")

	resp, err := client.GET("/carts")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []struct {
		ID     string `json:"_id"`
		Email  string `json:"email"`
		MenuID string `json:"menuId"`
		Price  string `json:"price"`
	}
	testutil.DecodeJSON(t, resp, &items)
	require.Len(t, items, 1)
	assert.Equal(t, cartItemID, items[0].ID)
	assert.Equal(t, email, items[0].Email)
	assert.Equal(t, menuItemID, items[0].MenuID)
	assert.Equal(t, "11.00", items[0].Price)

	resp, err = client.DELETE("/carts/" + cartItemID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.Equal(t, int64(1), result.DeletedCount)
}

func TestCart_List_OtherEmailForbidden(t *testing.T) {
	client := newTestClient(t)
	email, _ := registerTestUser(t, client)
	client.AuthenticateAs(t, email)

	resp, err := client.GET("/carts?email=someoneelse@example.com")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestCart_Delete_OtherUsersItem(t *testing.T) {
	admin := newTestClient(t)
	authenticateAsAdmin(t, admin)
	menuItemID := createTestMenuItem(t, admin, testutil.RandomName("salad"), "salad", "7.00")

	owner := newTestClient(t)
	ownerEmail, _ := registerTestUser(t, owner)
	owner.AuthenticateAs(t, ownerEmail)
	cartItemID := addTestCartItem(t, owner, menuItemID, "Caesar", "7.00")

	intruder := newTestClient(t)
	intruderEmail, _ := registerTestUser(t, intruder)
	intruder.AuthenticateAs(t, intruderEmail)

	resp, err := intruder.DELETE("/carts/" + cartItemID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// The item is still there for its owner
	resp, err = owner.GET("/carts")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []struct {
		ID string `json:"_id"`
	}
	testutil.DecodeJSON(t, resp, &items)
	require.Len(t, items, 1)
	assert.Equal(t, cartItemID, items[0].ID)
}

func TestCart_Delete_Missing(t *testing.T) {
	client := newTestClient(t)
	email, _ := registerTestUser(t, client)
	client.AuthenticateAs(t, email)

	resp, err := client.GET("/carts") // warm token
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = client.DELETE("/carts/0b9fbf25-671c-43c7-8cf1-8f4f3a4a0a2e")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestPayments_CreateIntent(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.POST("/create-payment-intent", map[string]float64{"price": 25.5})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var intent struct {
		ClientSecret string `json:"clientSecret"`
	}
	testutil.DecodeJSON(t, resp, &intent)
	assert.NotEmpty(t, intent.ClientSecret)
	assert.Equal(t, int64(2550), testGateway.lastAmount.Load())
}

func TestPayments_CreateIntent_GatewayFailure(t *testing.T) {
	client := newTestClient(t)
	testGateway.failNext.Store(true)

	resp, err := client.WithoutValidation().POST("/create-payment-intent", map[string]float64{"price": 10})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	resp.Body.Close()
}

func TestPayments_SettlementFlow(t *testing.T) {
	admin := newTestClient(t)
	authenticateAsAdmin(t, admin)
	menuItemID := createTestMenuItem(t, admin, testutil.RandomName("steak"), "steak", "24.00")

	client := newTestClient(t)
	email, _ := registerTestUser(t, client)
	client.AuthenticateAs(t, email)

	first := addTestCartItem(t, client, menuItemID, "Ribeye", "24.00")
	second := addTestCartItem(t, client, menuItemID, "Ribeye", "24.00")

	resp, err := client.POST("/payments", map[string]interface{}{
		"email":         email,
		"price":         48.0,
		"transactionId": "pi_settled_123",
		"cartIds":       []string{first, second},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var settle struct {
		PaymentResult struct {
			Acknowledged bool    `json:"acknowledged"`
			InsertedID   *string `json:"insertedId"`
		} `json:"paymentResult"`
		DeleteResult struct {
			DeletedCount int64 `json:"deletedCount"`
		} `json:"deleteResult"`
	}
	testutil.DecodeJSON(t, resp, &settle)
	assert.True(t, settle.PaymentResult.Acknowledged)
	require.NotNil(t, settle.PaymentResult.InsertedID)
	assert.Equal(t, int64(2), settle.DeleteResult.DeletedCount)

	// Settlement purged the cart
	resp, err = client.GET("/carts")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []struct {
		ID string `json:"_id"`
	}
	testutil.DecodeJSON(t, resp, &items)
	assert.Empty(t, items)

	// And the record is visible in payment history
	resp, err = client.GET("/payments/" + email)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payments []struct {
		ID            string   `json:"_id"`
		Email         string   `json:"email"`
		Price         string   `json:"price"`
		TransactionID string   `json:"transactionId"`
		CartIDs       []string `json:"cartIds"`
		Status        string   `json:"status"`
	}
	testutil.DecodeJSON(t, resp, &payments)
	require.Len(t, payments, 1)
	assert.Equal(t, *settle.PaymentResult.InsertedID, payments[0].ID)
	assert.Equal(t, "48.00", payments[0].Price)
	assert.Equal(t, "pi_settled_123", payments[0].TransactionID)
	assert.ElementsMatch(t, []string{first, second}, payments[0].CartIDs)
	assert.Equal(t, "settled", payments[0].Status)

	// The row in the store matches what the API reported
	var count int
	err = testDB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM payments WHERE email = $1`, email).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPayments_Settle_OtherUserForbidden(t *testing.T) {
	admin := newTestClient(t)
	authenticateAsAdmin(t, admin)
	menuItemID := createTestMenuItem(t, admin, testutil.RandomName("pasta"), "pasta", "13.00")

	victim := newTestClient(t)
	victimEmail, _ := registerTestUser(t, victim)
	victim.AuthenticateAs(t, victimEmail)
	cartItemID := addTestCartItem(t, victim, menuItemID, "Carbonara", "13.00")

	attacker := newTestClient(t)
	attackerEmail, _ := registerTestUser(t, attacker)
	attacker.AuthenticateAs(t, attackerEmail)

	resp, err := attacker.POST("/payments", map[string]interface{}{
		"email":         victimEmail,
		"price":         13.0,
		"transactionId": "pi_stolen",
		"cartIds":       []string{cartItemID},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// The victim's cart is untouched
	resp, err = victim.GET("/carts")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []struct {
		ID string `json:"_id"`
	}
	testutil.DecodeJSON(t, resp, &items)
	require.Len(t, items, 1)
}

func TestPayments_History_OtherUserForbidden(t *testing.T) {
	client := newTestClient(t)
	email, _ := registerTestUser(t, client)
	client.AuthenticateAs(t, email)

	resp, err := client.GET("/payments/someoneelse@example.com")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestPayments_Settle_EmptyCartIDs(t *testing.T) {
	client := newTestClient(t)
	email, _ := registerTestUser(t, client)
	client.AuthenticateAs(t, email)

	resp, err := client.POST("/payments", map[string]interface{}{
		"email":         email,
		"price":         5.0,
		"transactionId": "pi_empty",
		"cartIds":       []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
