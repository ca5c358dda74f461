package user_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spicemart-backend/auth"
	userControllers "spicemart-backend/controllers/user"
	"spicemart-backend/middleware"
	"spicemart-backend/models"
	"spicemart-backend/repository"
)

func setupProfileRouter(t *testing.T) (*gin.Engine, *repository.MemoryUserRepository, models.User, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	users := repository.NewMemoryUserRepository()
	issuer := auth.NewTokenIssuer("test-secret")

	account := models.User{
		Name:      "Asha Rao",
		Username:  "asha",
		Phone:     "9876543210",
		Email:     "asha@example.com",
		UserType:  "user",
		Addresses: []models.Address{},
	}
	require.NoError(t, users.Create(context.Background(), &account))
	token, err := issuer.Issue(account.ID.Hex(), account.Email, account.Username)
	require.NoError(t, err)

	r := gin.New()
	authed := r.Group("/", middleware.RequireAuth(issuer))
	authed.PUT("/user/:id", userControllers.UpdateUser(users))
	authed.DELETE("/user/:id", userControllers.DeleteUser(users))
	authed.POST("/user/:id/address", userControllers.AddAddress(users))
	authed.DELETE("/user/:id/address/:addressId", userControllers.DeleteAddress(users))
	return r, users, account, token
}

func request(r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var raw []byte
	if body != nil {
		raw, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateUserPatchesNonEmptyFields(t *testing.T) {
	r, users, account, token := setupProfileRouter(t)

	w := request(r, http.MethodPut, "/user/"+account.ID.Hex(), map[string]string{"name": "Asha R"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := users.FindByID(context.Background(), account.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Asha R", stored.Name)
	assert.Equal(t, "asha", stored.Username) // untouched
}

func TestUpdateUserUnknownIDIs404(t *testing.T) {
	r, _, _, token := setupProfileRouter(t)
	w := request(r, http.MethodPut, "/user/000000000000000000000000", map[string]string{"name": "x"}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser(t *testing.T) {
	r, users, account, token := setupProfileRouter(t)

	w := request(r, http.MethodDelete, "/user/"+account.ID.Hex(), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	_, err := users.FindByID(context.Background(), account.ID.Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	w = request(r, http.MethodDelete, "/user/"+account.ID.Hex(), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddressLifecycle(t *testing.T) {
	r, users, account, token := setupProfileRouter(t)

	addr := map[string]string{
		"name":     "Asha Rao",
		"phone":    "9876543210",
		"pincode":  "682001",
		"state":    "Kerala",
		"city":     "Kochi",
		"locality": "Fort",
		"landmark": "Near lighthouse",
	}
	w := request(r, http.MethodPost, "/user/"+account.ID.Hex()+"/address", addr, token)
	require.Equal(t, http.StatusOK, w.Code)

	// Addresses carry no uniqueness constraint; the same one stacks.
	w = request(r, http.MethodPost, "/user/"+account.ID.Hex()+"/address", addr, token)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := users.FindByID(context.Background(), account.ID.Hex())
	require.NoError(t, err)
	require.Len(t, stored.Addresses, 2)

	first := stored.Addresses[0].ID.Hex()
	w = request(r, http.MethodDelete, "/user/"+account.ID.Hex()+"/address/"+first, nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err = users.FindByID(context.Background(), account.ID.Hex())
	require.NoError(t, err)
	require.Len(t, stored.Addresses, 1)

	w = request(r, http.MethodDelete, "/user/"+account.ID.Hex()+"/address/"+first, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
