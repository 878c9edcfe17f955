package controllers_test

import (
	"fmt"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecepns/lily-mily-kosmetik/database"
	"github.com/cecepns/lily-mily-kosmetik/models"
	"github.com/cecepns/lily-mily-kosmetik/storage"
)

func TestBrandCRUDWithLogoLifecycle(t *testing.T) {
	router := setupServer(t)
	token := loginToken(t, router)

	w := doMultipart(t, router, http.MethodPost, "/api/brands", token, map[string]string{
		"name":        "Wardah",
		"description": "Local brand",
	}, "logo", "logo.png")
	require.Equal(t, http.StatusCreated, w.Code)

	var brand models.Brand
	decodeBody(t, w, &brand)
	require.NotZero(t, brand.ID)
	require.NotNil(t, brand.Logo)
	oldLogoPath := filepath.Join(storage.Dir(), *brand.Logo)
	assert.True(t, fileExists(oldLogoPath))

	// replacing the logo deletes the old file
	w = doMultipart(t, router, http.MethodPut, fmt.Sprintf("/api/brands/%d", brand.ID), token, map[string]string{
		"name": "Wardah",
	}, "logo", "logo2.png")
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, database.DB.First(&brand, brand.ID).Error)
	require.NotNil(t, brand.Logo)
	assert.False(t, fileExists(oldLogoPath))
	newLogoPath := filepath.Join(storage.Dir(), *brand.Logo)
	assert.True(t, fileExists(newLogoPath))

	// retaining the logo through existing_logo keeps the file
	w = doMultipart(t, router, http.MethodPut, fmt.Sprintf("/api/brands/%d", brand.ID), token, map[string]string{
		"name":          "Wardah Official",
		"existing_logo": *brand.Logo,
	}, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, fileExists(newLogoPath))

	// deleting the brand removes the row and the file
	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/brands/%d", brand.ID), "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, fileExists(newLogoPath))

	w = doJSON(router, http.MethodGet, "/api/brands", "", "")
	var brands []models.Brand
	decodeBody(t, w, &brands)
	assert.Empty(t, brands)
}

func TestBrandValidation(t *testing.T) {
	router := setupServer(t)
	token := loginToken(t, router)

	w := doMultipart(t, router, http.MethodPost, "/api/brands", token, map[string]string{"description": "nameless"}, "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doMultipart(t, router, http.MethodPut, "/api/brands/999", token, map[string]string{"name": "Ghost"}, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
