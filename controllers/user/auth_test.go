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
	"spicemart-backend/repository"
)

func setupAuthRouter() (*gin.Engine, *repository.MemoryUserRepository, *auth.TokenIssuer) {
	gin.SetMode(gin.TestMode)
	users := repository.NewMemoryUserRepository()
	issuer := auth.NewTokenIssuer("test-secret")

	r := gin.New()
	r.POST("/register", userControllers.Register(users, 8))
	r.POST("/login", userControllers.Login(users, issuer))
	r.POST("/logout", middleware.RequireAuth(issuer), userControllers.Logout(users))
	r.GET("/user/profile", middleware.RequireAuth(issuer), userControllers.GetProfile(users))
	return r, users, issuer
}

func postJSON(r *gin.Engine, path string, body any, token string) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerBody(name, username, phone, email string) map[string]string {
	return map[string]string{
		"name":     name,
		"username": username,
		"phone":    phone,
		"email":    email,
		"password": "password123",
	}
}

func TestRegisterValidationErrorsAreComplete(t *testing.T) {
	r, _, _ := setupAuthRouter()

	w := postJSON(r, "/register", map[string]string{
		"name":     "A",
		"username": "bad name",
		"phone":    "123",
		"email":    "nope",
		"password": "short",
	}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Errors []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Errors, 5)
}

func TestRegisterDuplicateTriple(t *testing.T) {
	r, _, _ := setupAuthRouter()

	w := postJSON(r, "/register", registerBody("Asha Rao", "asha", "9876543210", "asha@example.com"), "")
	require.Equal(t, http.StatusOK, w.Code)

	// Identical (name, email, phone) triple is rejected.
	w = postJSON(r, "/register", registerBody("Asha Rao", "ashatwo", "9876543210", "asha@example.com"), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")

	// Same email with different name and phone passes the duplicate rule.
	w = postJSON(r, "/register", registerBody("Other Person", "other", "9876543211", "asha@example.com"), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterNeverStoresPlaintext(t *testing.T) {
	r, users, _ := setupAuthRouter()

	w := postJSON(r, "/register", registerBody("Asha Rao", "asha", "9876543210", "asha@example.com"), "")
	require.Equal(t, http.StatusOK, w.Code)

	account, err := users.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", account.Password)
	assert.True(t, auth.CheckPassword("password123", account.Password))
	assert.Equal(t, "user", account.UserType)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	r, _, _ := setupAuthRouter()
	postJSON(r, "/register", registerBody("Asha Rao", "asha", "9876543210", "asha@example.com"), "")

	unknown := postJSON(r, "/login", map[string]string{"email": "ghost@example.com", "password": "password123"}, "")
	wrongPass := postJSON(r, "/login", map[string]string{"email": "asha@example.com", "password": "wrongwrong"}, "")

	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, http.StatusBadRequest, wrongPass.Code)
	assert.JSONEq(t, unknown.Body.String(), wrongPass.Body.String())
}

func TestLoginAppendsSessionStamp(t *testing.T) {
	r, users, _ := setupAuthRouter()
	postJSON(r, "/register", registerBody("Asha Rao", "asha", "9876543210", "asha@example.com"), "")

	w := postJSON(r, "/login", map[string]string{"email": "asha@example.com", "password": "password123"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	account, err := users.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	require.Len(t, account.Timestamps, 1)
	assert.NotEmpty(t, account.Timestamps[0].Login)
	assert.Empty(t, account.Timestamps[0].Logout)

	// Logging in again stacks a second open stamp; the first stays open.
	postJSON(r, "/login", map[string]string{"email": "asha@example.com", "password": "password123"}, "")
	account, err = users.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	require.Len(t, account.Timestamps, 2)
	assert.Empty(t, account.Timestamps[0].Logout)
	assert.Empty(t, account.Timestamps[1].Logout)
}

func TestLogoutRequiresTokenAndIsIdempotent(t *testing.T) {
	r, users, _ := setupAuthRouter()
	postJSON(r, "/register", registerBody("Asha Rao", "asha", "9876543210", "asha@example.com"), "")

	// No token at all.
	w := postJSON(r, "/logout", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")

	// Garbage token.
	w = postJSON(r, "/logout", nil, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")

	login := postJSON(r, "/login", map[string]string{"email": "asha@example.com", "password": "password123"}, "")
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &resp))

	w = postJSON(r, "/logout", nil, resp.Token)
	require.Equal(t, http.StatusOK, w.Code)

	account, err := users.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	require.Len(t, account.Timestamps, 1)
	firstLogout := account.Timestamps[0].Logout
	assert.NotEmpty(t, firstLogout)

	// Second logout changes nothing and still succeeds.
	w = postJSON(r, "/logout", nil, resp.Token)
	require.Equal(t, http.StatusOK, w.Code)
	account, err = users.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, firstLogout, account.Timestamps[0].Logout)
}

func TestProfileOmitsPassword(t *testing.T) {
	r, _, _ := setupAuthRouter()
	postJSON(r, "/register", registerBody("Asha Rao", "asha", "9876543210", "asha@example.com"), "")
	login := postJSON(r, "/login", map[string]string{"email": "asha@example.com", "password": "password123"}, "")
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "asha@example.com")
	assert.NotContains(t, w.Body.String(), "password123")
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body["password"])
}
