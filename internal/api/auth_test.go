package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w := srv.request(t, http.MethodPost, "/auth/register", "", gin.H{
		"nom": "Alice", "email": "alice@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user struct {
		ID      uint   `json:"id"`
		Nom     string `json:"nom"`
		Email   string `json:"email"`
		IsAdmin bool   `json:"is_admin"`
	}
	decodeJSON(t, w, &user)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Alice", user.Nom)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.IsAdmin)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegisterEndpointValidation(t *testing.T) {
	srv := newTestServer(t)

	cases := []gin.H{
		{"nom": "A", "email": "a@example.com", "password": "secret1"},
		{"nom": "Alice", "email": "not-an-email", "password": "secret1"},
		{"nom": "Alice", "email": "a@example.com", "password": "short"},
		{"email": "a@example.com", "password": "secret1"},
	}
	for _, body := range cases {
		w := srv.request(t, http.MethodPost, "/auth/register", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	}
}

func TestRegisterEndpointDuplicateEmail(t *testing.T) {
	srv := newTestServer(t)

	srv.register(t, "Alice", "alice@example.com", "secret1")
	w := srv.request(t, http.MethodPost, "/auth/register", "", gin.H{
		"nom": "Autre", "email": "alice@example.com", "password": "secret2",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	srv := newTestServer(t)
	srv.register(t, "Alice", "alice@example.com", "secret1")

	w := srv.request(t, http.MethodPost, "/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = srv.request(t, http.MethodPost, "/auth/login", "", gin.H{
		"email": "nobody@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := srv.register(t, "Alice", "alice@example.com", "secret1")

	w := srv.request(t, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var user struct {
		Email string `json:"email"`
	}
	decodeJSON(t, w, &user)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestMeEndpointUnauthorized(t *testing.T) {
	srv := newTestServer(t)

	w := srv.request(t, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = srv.request(t, http.MethodGet, "/auth/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
