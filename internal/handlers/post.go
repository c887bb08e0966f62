package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/models"
	"blogapi/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct {
	pageSize int
}

func NewPostHandler(cfg config.Config) *PostHandler {
	return &PostHandler{pageSize: cfg.PageSize}
}

// postInput is the client-writable field set. Server-controlled fields
// (likes, dislikes, timestamps) are absent on purpose: anything else in
// the payload is dropped during binding.
type postInput struct {
	Title      string `json:"title" binding:"required,max=255"`
	Content    string `json:"content" binding:"required"`
	Author     string `json:"author" binding:"required,max=100"`
	Categories []uint `json:"categories"`
}

// postUpdateInput allows partial updates; absent fields keep their
// stored value, present-but-blank fields are rejected.
type postUpdateInput struct {
	Title      *string `json:"title" binding:"omitnil,min=1,max=255"`
	Content    *string `json:"content" binding:"omitnil,min=1"`
	Author     *string `json:"author" binding:"omitnil,min=1,max=100"`
	Categories *[]uint `json:"categories"`
}

// Ordering fields the client may pick from. Anything else falls back to
// the default newest-first order.
var postOrderFields = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"likes":      "likes",
	"dislikes":   "dislikes",
	"author":     "author",
	"title":      "title",
}

func postOrderClause(ordering string) string {
	direction := "ASC"
	field := ordering
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		field = ordering[1:]
	}
	column, ok := postOrderFields[field]
	if !ok {
		return "created_at DESC"
	}
	return column + " " + direction
}

// presentPost fills the response-only fields.
func presentPost(p *models.Post) {
	p.CategoryIDs = make([]uint, 0, len(p.Categories))
	for _, category := range p.Categories {
		p.CategoryIDs = append(p.CategoryIDs, category.ID)
	}
	p.ContentHTML = utils.RenderMarkdown(p.Content)
}

// resolveCategories maps the requested ids to rows; an id that resolves
// to nothing is a validation error, not a silent drop.
func resolveCategories(c *gin.Context, ids []uint) ([]models.Category, bool) {
	if len(ids) == 0 {
		return nil, true
	}

	unique := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	var categories []models.Category
	if err := db.DB.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		ServerError(c, err)
		return nil, false
	}
	if len(categories) != len(unique) {
		JSONError(c, http.StatusBadRequest, "one or more category ids do not exist")
		return nil, false
	}
	return categories, true
}

func (h *PostHandler) List(c *gin.Context) {
	var categoryID uint64
	if raw := c.Query("categories"); raw != "" {
		var err error
		categoryID, err = strconv.ParseUint(raw, 10, 32)
		if err != nil {
			JSONError(c, http.StatusBadRequest, "categories must be a numeric category id")
			return
		}
	}

	// Conditions are rebuilt for the count and the page query.
	filtered := func() *gorm.DB {
		query := db.DB.Model(&models.Post{})
		if author := c.Query("author"); author != "" {
			query = query.Where("author = ?", author)
		}
		if categoryID > 0 {
			query = query.Where(
				"id IN (?)",
				db.DB.Table("post_categories").Select("post_id").Where("category_id = ?", categoryID),
			)
		}
		if search := c.Query("search"); search != "" {
			pattern := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		ServerError(c, err)
		return
	}

	offset, env, ok := paginate(c, total, h.pageSize)
	if !ok {
		return
	}

	posts := make([]models.Post, 0, h.pageSize)
	if err := filtered().
		Preload("Categories").
		Order(postOrderClause(c.Query("ordering"))).
		Limit(h.pageSize).
		Offset(offset).
		Find(&posts).Error; err != nil {
		ServerError(c, err)
		return
	}

	for i := range posts {
		presentPost(&posts[i])
	}
	env.Results = posts
	c.JSON(http.StatusOK, env)
}

func (h *PostHandler) Create(c *gin.Context) {
	var in postInput
	if err := c.ShouldBindJSON(&in); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	categories, ok := resolveCategories(c, in.Categories)
	if !ok {
		return
	}

	post := models.Post{
		Title:      in.Title,
		Content:    in.Content,
		Author:     in.Author,
		Categories: categories,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		ServerError(c, err)
		return
	}

	presentPost(&post)
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) Retrieve(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var post models.Post
	if err := db.DB.Preload("Categories").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			JSONError(c, http.StatusNotFound, "post not found")
		} else {
			ServerError(c, err)
		}
		return
	}

	presentPost(&post)
	c.JSON(http.StatusOK, post)
}

// Update serves both PUT and PATCH: the writable fields are replaced
// when present and kept otherwise. updated_at refreshes on every save.
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var post models.Post
	if err := db.DB.Preload("Categories").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			JSONError(c, http.StatusNotFound, "post not found")
		} else {
			ServerError(c, err)
		}
		return
	}

	var in postUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Author != nil {
		post.Author = *in.Author
	}
	if in.Categories != nil {
		categories, ok := resolveCategories(c, *in.Categories)
		if !ok {
			return
		}
		if err := db.DB.Model(&post).Association("Categories").Replace(categories); err != nil {
			ServerError(c, err)
			return
		}
		post.Categories = categories
	}

	if err := db.DB.Omit("Categories").Save(&post).Error; err != nil {
		ServerError(c, err)
		return
	}

	presentPost(&post)
	c.JSON(http.StatusOK, post)
}

// Delete removes the post together with its comments. The comment FK
// declares ON DELETE CASCADE, but the dependent rows are removed
// explicitly in one transaction so the behavior does not depend on how
// the target database was provisioned.
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			JSONError(c, http.StatusNotFound, "post not found")
		} else {
			ServerError(c, err)
		}
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&post).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		ServerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PostHandler) Like(c *gin.Context) {
	h.incrementCounter(c, "likes")
}

func (h *PostHandler) Dislike(c *gin.Context) {
	h.incrementCounter(c, "dislikes")
}

// incrementCounter bumps one counter column in place. The increment
// happens in the database, so concurrent calls cannot lose updates, and
// repeated calls keep counting: there is no dedup by caller.
func (h *PostHandler) incrementCounter(c *gin.Context, column string) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result := db.DB.Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if result.Error != nil {
		ServerError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		JSONError(c, http.StatusNotFound, "post not found")
		return
	}

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": post.ID, "likes": post.Likes, "dislikes": post.Dislikes})
}
