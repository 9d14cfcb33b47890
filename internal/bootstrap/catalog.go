package bootstrap

import (
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/bookstore/internal/models"
)

// SeedCatalog is the fixed initial set of books.
func SeedCatalog() []models.Book {
	return []models.Book{
		{
			Title:     "Biology 101",
			Author:    "Mzuzu Publishers",
			Category:  "secondary",
			Price:     decimal.RequireFromString("12.99"),
			ImagePath: "images/biology.jpg",
			PdfPath:   "pdfs/biology.pdf",
		},
		{
			Title:     "Physics Advanced",
			Author:    "Blantyre Books",
			Category:  "secondary",
			Price:     decimal.RequireFromString("10.50"),
			ImagePath: "images/physics.jpg",
			PdfPath:   "pdfs/physics.pdf",
		},
		{
			Title:     "Physics Colleges",
			Author:    "Zomba Books",
			Category:  "tertiary",
			Price:     decimal.RequireFromString("25.00"),
			ImagePath: "images/physics.jpg",
			PdfPath:   "pdfs/physics.pdf",
		},
	}
}
