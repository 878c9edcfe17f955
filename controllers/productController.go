package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cecepns/lily-mily-kosmetik/database"
	"github.com/cecepns/lily-mily-kosmetik/models"
	"github.com/cecepns/lily-mily-kosmetik/storage"
)

const productJoin = `
	FROM products p
	LEFT JOIN brands b ON p.brand_id = b.id
	LEFT JOIN categories c ON p.category_id = c.id
`

const productColumns = "p.*, b.name AS brand_name, c.name AS category_name"

// GetProducts returns one page of active products joined with their
// brand and category names, plus the totals the storefront pager
// needs. Search matches product or brand name case-insensitively;
// category matches the category name exactly.
func GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	where := " WHERE p.is_active = ?"
	args := []interface{}{true}

	if search := c.Query("search"); search != "" {
		where += " AND (LOWER(p.name) LIKE ? OR LOWER(b.name) LIKE ?)"
		pattern := "%" + strings.ToLower(search) + "%"
		args = append(args, pattern, pattern)
	}
	if category := c.Query("category"); category != "" {
		where += " AND c.name = ?"
		args = append(args, category)
	}

	// The count runs against the same predicate as the page query so
	// the totals stay correct on any page, including past the end.
	var total int64
	countRow := database.DB.Raw("SELECT COUNT(*)"+productJoin+where, args...).Row()
	if err := countRow.Scan(&total); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	listQuery := "SELECT " + productColumns + productJoin + where + " ORDER BY p.id DESC LIMIT ? OFFSET ?"
	listArgs := append(args, limit, offset)

	var products []models.ProductRow
	if err := database.DB.Raw(listQuery, listArgs...).Scan(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if products == nil {
		products = []models.ProductRow{}
	}

	c.JSON(http.StatusOK, gin.H{
		"products":      products,
		"totalProducts": total,
		"totalPages":    totalPages,
		"currentPage":   page,
		"itemsPerPage":  limit,
	})
}

// GetProduct returns a single active product or 404. Inactive rows are
// indistinguishable from missing ones here.
func GetProduct(c *gin.Context) {
	id := c.Param("id")

	var product models.ProductRow
	query := "SELECT " + productColumns + productJoin + " WHERE p.id = ? AND p.is_active = ?"
	if err := database.DB.Raw(query, id, true).Scan(&product).Error; err != nil {
		handleLookupError(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusOK, product)
}

type productForm struct {
	Name            string
	Description     string
	Price           float64
	OnlineStoreLink string
	BrandID         uint
	CategoryID      uint
}

func bindProductForm(c *gin.Context) (*productForm, bool) {
	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product name is required"})
		return nil, false
	}
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid price is required"})
		return nil, false
	}

	// A missing or stale brand/category id is tolerated; the LEFT
	// JOINs simply yield no name for it.
	brandID, _ := strconv.ParseUint(c.PostForm("brand_id"), 10, 64)
	categoryID, _ := strconv.ParseUint(c.PostForm("category_id"), 10, 64)

	return &productForm{
		Name:            name,
		Description:     c.PostForm("description"),
		Price:           price,
		OnlineStoreLink: c.PostForm("online_store_link"),
		BrandID:         uint(brandID),
		CategoryID:      uint(categoryID),
	}, true
}

func CreateProduct(c *gin.Context) {
	form, ok := bindProductForm(c)
	if !ok {
		return
	}

	var image *string
	if file, err := c.FormFile("image"); err == nil {
		filename, err := storage.Save("image", file)
		if err != nil {
			handleUploadError(c, err)
			return
		}
		image = &filename
	}

	product := models.Product{
		Name:            form.Name,
		Description:     form.Description,
		Price:           form.Price,
		Image:           image,
		OnlineStoreLink: form.OnlineStoreLink,
		BrandID:         form.BrandID,
		CategoryID:      form.CategoryID,
		IsActive:        true,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      product.ID,
		"message": "Product created successfully",
	})
}

// UpdateProduct applies the image precedence rule (new upload >
// retained existing filename > cleared), commits the row, then
// best-effort deletes the previous file when the filename changed.
func UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	var product models.Product
	if err := database.DB.First(&product, "id = ?", id).Error; err != nil {
		handleLookupError(c, err, "Product not found")
		return
	}

	form, ok := bindProductForm(c)
	if !ok {
		return
	}

	var image *string
	if file, err := c.FormFile("image"); err == nil {
		filename, err := storage.Save("image", file)
		if err != nil {
			handleUploadError(c, err)
			return
		}
		image = &filename
	} else if existing := c.PostForm("existing_image"); existing != "" && existing != "null" && existing != "undefined" {
		image = &existing
	}

	oldImage := product.Image
	updates := map[string]interface{}{
		"name":              form.Name,
		"description":       form.Description,
		"price":             form.Price,
		"image":             image,
		"online_store_link": form.OnlineStoreLink,
		"brand_id":          form.BrandID,
		"category_id":       form.CategoryID,
	}
	if err := database.DB.Model(&product).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if oldImage != nil && (image == nil || *image != *oldImage) {
		storage.Remove(*oldImage)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

// DeleteProduct is a soft delete: the row stays, flagged inactive, and
// its image file is cleaned up.
func DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	var product models.Product
	if err := database.DB.First(&product, "id = ?", id).Error; err != nil {
		handleLookupError(c, err, "Product not found")
		return
	}

	if err := database.DB.Model(&product).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if product.Image != nil {
		storage.Remove(*product.Image)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// RemoveProductImage clears the image column and deletes the file,
// independent of soft delete.
func RemoveProductImage(c *gin.Context) {
	id := c.Param("id")
	var product models.Product
	if err := database.DB.First(&product, "id = ?", id).Error; err != nil {
		handleLookupError(c, err, "Product not found")
		return
	}

	if err := database.DB.Model(&product).Update("image", nil).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if product.Image != nil {
		storage.Remove(*product.Image)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product image removed successfully"})
}

type bulkProduct struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	OnlineStoreLink string  `json:"online_store_link"`
	BrandID         uint    `json:"brand_id"`
	CategoryID      uint    `json:"category_id"`
}

type bulkInsertRequest struct {
	Products []bulkProduct `json:"products"`
}

// BulkCreateProducts performs one multi-row insert for the rows the
// admin client already parsed and validated out of its spreadsheet.
// Rows arrive pre-shaped; no per-row re-validation happens here.
func BulkCreateProducts(c *gin.Context) {
	var req bulkInsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Products) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Products array is required and cannot be empty"})
		return
	}

	placeholders := make([]string, 0, len(req.Products))
	args := make([]interface{}, 0, len(req.Products)*7)
	for _, p := range req.Products {
		placeholders = append(placeholders, "(?, ?, ?, NULL, ?, ?, ?, ?)")
		args = append(args, p.Name, p.Description, p.Price, p.OnlineStoreLink, p.BrandID, p.CategoryID, true)
	}

	query := "INSERT INTO products (name, description, price, image, online_store_link, brand_id, category_id, is_active) VALUES " +
		strings.Join(placeholders, ", ") + " RETURNING id"

	var insertID uint
	row := database.DB.Raw(query, args...).Row()
	if err := row.Scan(&insertID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       fmt.Sprintf("%d products inserted successfully", len(req.Products)),
		"insertedCount": len(req.Products),
		"insertId":      insertID,
	})
}
