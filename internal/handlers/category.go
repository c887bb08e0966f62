package handlers

import (
	"errors"
	"net/http"

	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler is read-only: categories are seeded at startup and
// have no mutation endpoints.
type CategoryHandler struct {
	pageSize int
}

func NewCategoryHandler(cfg config.Config) *CategoryHandler {
	return &CategoryHandler{pageSize: cfg.PageSize}
}

// fillPostCounts batch-fills the per-category post counts.
func fillPostCounts(categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}

	ids := make([]uint, len(categories))
	for i, category := range categories {
		ids[i] = category.ID
	}

	type countResult struct {
		CategoryID uint
		Count      int64
	}
	var results []countResult
	err := db.DB.Table("post_categories").
		Select("category_id, COUNT(*) as count").
		Where("category_id IN ?", ids).
		Group("category_id").
		Scan(&results).Error
	if err != nil {
		return err
	}

	countMap := make(map[uint]int64, len(results))
	for _, r := range results {
		countMap[r.CategoryID] = r.Count
	}
	for i := range categories {
		categories[i].PostCount = countMap[categories[i].ID]
	}
	return nil
}

func (h *CategoryHandler) List(c *gin.Context) {
	var total int64
	if err := db.DB.Model(&models.Category{}).Count(&total).Error; err != nil {
		ServerError(c, err)
		return
	}

	offset, env, ok := paginate(c, total, h.pageSize)
	if !ok {
		return
	}

	categories := make([]models.Category, 0, h.pageSize)
	if err := db.DB.
		Order("name ASC").
		Limit(h.pageSize).
		Offset(offset).
		Find(&categories).Error; err != nil {
		ServerError(c, err)
		return
	}

	if err := fillPostCounts(categories); err != nil {
		ServerError(c, err)
		return
	}
	env.Results = categories
	c.JSON(http.StatusOK, env)
}

func (h *CategoryHandler) Retrieve(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var category models.Category
	if err := db.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			JSONError(c, http.StatusNotFound, "category not found")
		} else {
			ServerError(c, err)
		}
		return
	}

	categories := []models.Category{category}
	if err := fillPostCounts(categories); err != nil {
		ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories[0])
}
