package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cecepns/lily-mily-kosmetik/database"
	"github.com/cecepns/lily-mily-kosmetik/models"
	"github.com/cecepns/lily-mily-kosmetik/storage"
)

func GetBrands(c *gin.Context) {
	var brands []models.Brand
	if err := database.DB.Order("name").Find(&brands).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, brands)
}

func CreateBrand(c *gin.Context) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Brand name is required"})
		return
	}

	var logo *string
	if file, err := c.FormFile("logo"); err == nil {
		filename, err := storage.Save("logo", file)
		if err != nil {
			handleUploadError(c, err)
			return
		}
		logo = &filename
	}

	brand := models.Brand{
		Name:        name,
		Description: c.PostForm("description"),
		Logo:        logo,
	}
	if err := database.DB.Create(&brand).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, brand)
}

func UpdateBrand(c *gin.Context) {
	id := c.Param("id")
	var brand models.Brand
	if err := database.DB.First(&brand, "id = ?", id).Error; err != nil {
		handleLookupError(c, err, "Brand not found")
		return
	}

	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Brand name is required"})
		return
	}

	// Logo precedence: new upload > retained existing filename > cleared.
	var logo *string
	if file, err := c.FormFile("logo"); err == nil {
		filename, err := storage.Save("logo", file)
		if err != nil {
			handleUploadError(c, err)
			return
		}
		logo = &filename
	} else if existing := c.PostForm("existing_logo"); existing != "" && existing != "null" && existing != "undefined" {
		logo = &existing
	}

	oldLogo := brand.Logo
	updates := map[string]interface{}{
		"name":        name,
		"description": c.PostForm("description"),
		"logo":        logo,
	}
	if err := database.DB.Model(&brand).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Row mutation committed; stale file cleanup is best effort.
	if oldLogo != nil && (logo == nil || *logo != *oldLogo) {
		storage.Remove(*oldLogo)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Brand updated successfully"})
}

func DeleteBrand(c *gin.Context) {
	id := c.Param("id")
	var brand models.Brand
	if err := database.DB.First(&brand, "id = ?", id).Error; err != nil {
		handleLookupError(c, err, "Brand not found")
		return
	}

	if err := database.DB.Delete(&brand).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if brand.Logo != nil {
		storage.Remove(*brand.Logo)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Brand deleted successfully"})
}

func handleUploadError(c *gin.Context, err error) {
	if errors.Is(err, storage.ErrNotImage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
