package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cecepns/lily-mily-kosmetik/database"
	"github.com/cecepns/lily-mily-kosmetik/models"
)

// GetReviews is the public listing: approved reviews only, newest
// first.
func GetReviews(c *gin.Context) {
	var reviews []models.Review
	if err := database.DB.Where("is_approved = ?", true).Order("created_at DESC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetAllReviews is the admin listing, including unapproved reviews.
func GetAllReviews(c *gin.Context) {
	var reviews []models.Review
	if err := database.DB.Order("created_at DESC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview inserts an unapproved review regardless of input; it
// becomes visible only after moderation.
func CreateReview(c *gin.Context) {
	var input struct {
		CustomerName string `json:"customer_name" binding:"required"`
		Rating       int    `json:"rating" binding:"required"`
		Comment      string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	review := models.Review{
		CustomerName: input.CustomerName,
		Rating:       input.Rating,
		Comment:      input.Comment,
		IsApproved:   false,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      review.ID,
		"message": "Review submitted successfully",
	})
}

// ApproveReview flips a review to approved. Approving an already
// approved review is a no-op.
func ApproveReview(c *gin.Context) {
	id := c.Param("id")
	var review models.Review
	if err := database.DB.First(&review, "id = ?", id).Error; err != nil {
		handleLookupError(c, err, "Review not found")
		return
	}

	if err := database.DB.Model(&review).Update("is_approved", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review approved successfully"})
}

// DeleteReview is a hard delete, unlike products.
func DeleteReview(c *gin.Context) {
	id := c.Param("id")
	var review models.Review
	if err := database.DB.First(&review, "id = ?", id).Error; err != nil {
		handleLookupError(c, err, "Review not found")
		return
	}

	if err := database.DB.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
