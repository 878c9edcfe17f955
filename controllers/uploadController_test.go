package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecepns/lily-mily-kosmetik/storage"
)

func TestUploadFile(t *testing.T) {
	router := setupServer(t)
	token := loginToken(t, router)

	w := doMultipart(t, router, http.MethodPost, "/api/upload", token, nil, "file", "banner.jpg")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Filename string `json:"filename"`
		Path     string `json:"path"`
	}
	decodeBody(t, w, &resp)
	assert.True(t, strings.HasPrefix(resp.Filename, "file-"))
	assert.True(t, strings.HasSuffix(resp.Filename, ".jpg"))
	assert.Equal(t, "/uploads/"+resp.Filename, resp.Path)
	assert.True(t, fileExists(filepath.Join(storage.Dir(), resp.Filename)))
}

func TestUploadRejectsNonImage(t *testing.T) {
	router := setupServer(t)
	token := loginToken(t, router)

	body, contentType := multipartBody(t, nil, "file", "doc.pdf", "application/pdf")
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadWithoutFile(t *testing.T) {
	router := setupServer(t)
	token := loginToken(t, router)

	w := doMultipart(t, router, http.MethodPost, "/api/upload", token, map[string]string{"note": "no file"}, "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
