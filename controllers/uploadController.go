package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cecepns/lily-mily-kosmetik/storage"
)

// UploadFile is the generic upload endpoint. The stored file is
// immediately reachable under the static /uploads prefix.
func UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	filename, err := storage.Save("file", file)
	if err != nil {
		handleUploadError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filename": filename,
		"path":     "/uploads/" + filename,
	})
}
