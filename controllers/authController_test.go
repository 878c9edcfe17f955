package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesUsableToken(t *testing.T) {
	router := setupServer(t)
	token := loginToken(t, router)

	w := doJSON(router, http.MethodGet, "/api/reviews/admin", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	router := setupServer(t)

	w := doJSON(router, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"wrong"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeBody(t, w, &body)
	assert.False(t, body.Success)
	assert.Equal(t, "Invalid credentials", body.Message)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := setupServer(t)

	w := doJSON(router, http.MethodGet, "/api/reviews/admin", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/api/reviews/admin", "", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPost, "/api/categories", `{"name":"Skincare"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPublicRoutesNeedNoToken(t *testing.T) {
	router := setupServer(t)

	for _, path := range []string{"/api/products", "/api/categories", "/api/brands", "/api/reviews"} {
		w := doJSON(router, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
