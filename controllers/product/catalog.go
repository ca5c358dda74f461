// Package product holds the catalog handlers.
package product

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"spicemart-backend/models"
	"spicemart-backend/repository"
)

type mergeInput struct {
	CatName       string               `json:"cat_name"`
	SubCategories []models.SubCategory `json:"subCategories"`
}

// AddProducts merges subcategories into a category, creating the category
// if it does not exist. All incoming subcategories are scanned before
// deciding the outcome: the ones whose names are free are appended, the
// rest are collisions. A colliding subcategory is treated as already
// present in full; its products are not merged into the stored one.
// When nothing new remains the response names the first collision, the
// shape the storefront already understands.
func AddProducts(catalog repository.CatalogRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in mergeInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		if in.CatName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "cat_name is required"})
			return
		}

		ctx := c.Request.Context()
		category, err := catalog.FindByName(ctx, in.CatName)
		if errors.Is(err, repository.ErrNotFound) {
			category = &models.Category{
				CatName:       in.CatName,
				SubCategories: in.SubCategories,
			}
			if category.SubCategories == nil {
				category.SubCategories = []models.SubCategory{}
			}
			if err := catalog.Create(ctx, category); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
				return
			}
			c.JSON(http.StatusCreated, category)
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}

		appended := 0
		var firstCollision *models.SubCategory
		var collisions []string
		for _, sub := range in.SubCategories {
			existing := findSubCategory(category.SubCategories, sub.SubCatName)
			if existing != nil {
				collisions = append(collisions, sub.SubCatName)
				if firstCollision == nil {
					firstCollision = existing
				}
				continue
			}
			category.SubCategories = append(category.SubCategories, sub)
			appended++
		}
		if len(collisions) > 0 {
			log.Printf("catalog merge %q: %d appended, colliding subcategories %v", in.CatName, appended, collisions)
		}

		if appended == 0 && firstCollision != nil {
			c.JSON(http.StatusOK, gin.H{
				"message":     "Subcategory already exists",
				"subCategory": firstCollision,
			})
			return
		}

		if err := catalog.Update(ctx, category); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func findSubCategory(subs []models.SubCategory, name string) *models.SubCategory {
	for i := range subs {
		if subs[i].SubCatName == name {
			return &subs[i]
		}
	}
	return nil
}

// ListCategories returns the whole catalog tree.
func ListCategories(catalog repository.CatalogRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := catalog.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		if len(categories) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No categories found"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
