package tests

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userHttp "github.com/itemshare/item-sharing-backend/internal/user/http"
)

func userPath(id int64) string {
	return fmt.Sprintf("/users/%d", id)
}

func TestUserCRUD(t *testing.T) {
	clearTables()

	var userID int64

	t.Run("Create User: Validation", func(t *testing.T) {
		// Missing email
		w := executeRequest("POST", "/users", map[string]any{"name": "alice"}, 0)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		// Malformed email
		wBad := executeRequest("POST", "/users", userHttp.CreateUserRequest{Name: "alice", Email: "not-an-email"}, 0)
		assert.Equal(t, http.StatusBadRequest, wBad.Code)
	})

	t.Run("Create User: Success", func(t *testing.T) {
		w := executeRequest("POST", "/users", userHttp.CreateUserRequest{Name: "alice", Email: "Alice@Example.com"}, 0)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		resp := decode[userHttp.UserResponse](t, w)
		assert.NotZero(t, resp.ID)
		assert.Equal(t, "alice", resp.Name)
		assert.Equal(t, "alice@example.com", resp.Email, "Emails are stored lowercased")

		userID = resp.ID
	})

	t.Run("Create User: Duplicate Email", func(t *testing.T) {
		w := executeRequest("POST", "/users", userHttp.CreateUserRequest{Name: "other", Email: "alice@example.com"}, 0)
		assert.Equal(t, http.StatusConflict, w.Code, "Duplicate email must yield 409")

		// Case-insensitive duplicate via normalization
		wUpper := executeRequest("POST", "/users", userHttp.CreateUserRequest{Name: "other", Email: "ALICE@EXAMPLE.COM"}, 0)
		assert.Equal(t, http.StatusConflict, wUpper.Code)
	})

	t.Run("Get User", func(t *testing.T) {
		w := executeRequest("GET", userPath(userID), nil, 0)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice", decode[userHttp.UserResponse](t, w).Name)

		wMissing := executeRequest("GET", userPath(99999), nil, 0)
		assert.Equal(t, http.StatusNotFound, wMissing.Code)

		wInvalid := executeRequest("GET", "/users/not-a-number", nil, 0)
		assert.Equal(t, http.StatusBadRequest, wInvalid.Code)
	})

	t.Run("Update User: Partial Fields", func(t *testing.T) {
		name := "alice b"
		w := executeRequest("PATCH", userPath(userID), userHttp.UpdateUserRequest{Name: &name}, 0)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := decode[userHttp.UserResponse](t, w)
		assert.Equal(t, "alice b", resp.Name)
		assert.Equal(t, "alice@example.com", resp.Email, "Email must survive a name-only update")

		email := "alice.b@example.com"
		wEmail := executeRequest("PATCH", userPath(userID), userHttp.UpdateUserRequest{Email: &email}, 0)
		require.Equal(t, http.StatusOK, wEmail.Code)
		assert.Equal(t, "alice.b@example.com", decode[userHttp.UserResponse](t, wEmail).Email)
	})

	t.Run("Update User: Email Conflict", func(t *testing.T) {
		createTestUser(t, "bob", "bob@example.com")

		email := "bob@example.com"
		w := executeRequest("PATCH", userPath(userID), userHttp.UpdateUserRequest{Email: &email}, 0)
		assert.Equal(t, http.StatusConflict, w.Code, "Updating to a taken email must yield 409")
	})

	t.Run("List Users", func(t *testing.T) {
		w := executeRequest("GET", "/users", nil, 0)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]userHttp.UserResponse](t, w), 2)
	})

	t.Run("Delete User", func(t *testing.T) {
		w := executeRequest("DELETE", userPath(userID), nil, 0)
		assert.Equal(t, http.StatusNoContent, w.Code)

		wGet := executeRequest("GET", userPath(userID), nil, 0)
		assert.Equal(t, http.StatusNotFound, wGet.Code)

		wAgain := executeRequest("DELETE", userPath(userID), nil, 0)
		assert.Equal(t, http.StatusNotFound, wAgain.Code)
	})

	t.Run("Delete User: Still Referenced", func(t *testing.T) {
		owner := createTestUser(t, "carol", "carol@example.com")
		createTestItem(t, owner.ID, "mixer", true)

		w := executeRequest("DELETE", userPath(owner.ID), nil, 0)
		assert.Equal(t, http.StatusConflict, w.Code, "Owners with items cannot be deleted")
	})
}
