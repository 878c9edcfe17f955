package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/cecepns/lily-mily-kosmetik/database"
	"github.com/cecepns/lily-mily-kosmetik/models"
)

type GenerateReportRequest struct {
	ReportType string `json:"reportType" binding:"required"`
}

// GenerateReport renders an admin PDF export: the active catalog or
// the approved reviews.
func GenerateReport(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var title string
	var headers []string
	var widths []float64
	var rows [][]string

	switch req.ReportType {
	case "catalog":
		products, err := fetchCatalogRows()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		title = "Product Catalog"
		headers = []string{"Product", "Brand", "Category", "Price"}
		widths = []float64{70, 40, 40, 30}
		for _, p := range products {
			rows = append(rows, []string{
				p.Name,
				strOrDash(p.BrandName),
				strOrDash(p.CategoryName),
				fmt.Sprintf("%.2f", p.Price),
			})
		}
	case "reviews":
		var reviews []models.Review
		if err := database.DB.Where("is_approved = ?", true).Order("created_at DESC").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		title = "Approved Reviews"
		headers = []string{"Date", "Customer", "Rating", "Comment"}
		widths = []float64{30, 45, 20, 85}
		for _, r := range reviews {
			rows = append(rows, []string{
				r.CreatedAt.Format("2006-01-02"),
				r.CustomerName,
				fmt.Sprintf("%d/5", r.Rating),
				r.Comment,
			})
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown report type"})
		return
	}

	pdf, err := generatePDF(title, headers, widths, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_report.pdf", req.ReportType))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func fetchCatalogRows() ([]models.ProductRow, error) {
	var products []models.ProductRow
	query := "SELECT " + productColumns + productJoin + " WHERE p.is_active = ? ORDER BY p.name"
	if err := database.DB.Raw(query, true).Scan(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func generatePDF(title string, headers []string, widths []float64, rows [][]string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, "Generated "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
