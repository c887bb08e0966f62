package handlers

import (
	"errors"
	"net/http"

	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/models"
	"blogapi/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentHandler struct {
	pageSize int
}

func NewCommentHandler(cfg config.Config) *CommentHandler {
	return &CommentHandler{pageSize: cfg.PageSize}
}

// commentInput deliberately has no post field: the owning post comes
// from the URL path only, so a post id smuggled into the body is
// dropped during binding.
type commentInput struct {
	Content string `json:"content" binding:"required"`
	Author  string `json:"author" binding:"required,max=100"`
}

func presentComment(cm *models.Comment) {
	cm.ContentHTML = utils.RenderMarkdown(cm.Content)
}

// parentPost resolves the post the route is nested under. Every comment
// operation 404s before touching comments when the post is missing.
func parentPost(c *gin.Context) (*models.Post, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return nil, false
	}

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			JSONError(c, http.StatusNotFound, "post not found")
		} else {
			ServerError(c, err)
		}
		return nil, false
	}
	return &post, true
}

func (h *CommentHandler) List(c *gin.Context) {
	post, ok := parentPost(c)
	if !ok {
		return
	}

	var total int64
	if err := db.DB.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&total).Error; err != nil {
		ServerError(c, err)
		return
	}

	offset, env, ok := paginate(c, total, h.pageSize)
	if !ok {
		return
	}

	comments := make([]models.Comment, 0, h.pageSize)
	if err := db.DB.
		Where("post_id = ?", post.ID).
		Order("created_at DESC").
		Limit(h.pageSize).
		Offset(offset).
		Find(&comments).Error; err != nil {
		ServerError(c, err)
		return
	}

	for i := range comments {
		presentComment(&comments[i])
	}
	env.Results = comments
	c.JSON(http.StatusOK, env)
}

func (h *CommentHandler) Create(c *gin.Context) {
	post, ok := parentPost(c)
	if !ok {
		return
	}

	var in commentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	comment := models.Comment{
		PostID:  post.ID,
		Content: in.Content,
		Author:  in.Author,
	}
	if err := db.DB.Omit("Post").Create(&comment).Error; err != nil {
		ServerError(c, err)
		return
	}

	presentComment(&comment)
	c.JSON(http.StatusCreated, comment)
}

// Retrieve resolves the comment with one combined predicate on both the
// parent post and the comment id. A comment reached through the wrong
// post is indistinguishable from a missing one.
func (h *CommentHandler) Retrieve(c *gin.Context) {
	post, ok := parentPost(c)
	if !ok {
		return
	}
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return
	}

	var comment models.Comment
	err := db.DB.Where("post_id = ? AND id = ?", post.ID, commentID).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			JSONError(c, http.StatusNotFound, "comment not found")
		} else {
			ServerError(c, err)
		}
		return
	}

	presentComment(&comment)
	c.JSON(http.StatusOK, comment)
}

// Delete uses the same combined predicate as Retrieve, in a single
// delete statement so there is no check-then-act gap.
func (h *CommentHandler) Delete(c *gin.Context) {
	post, ok := parentPost(c)
	if !ok {
		return
	}
	commentID, ok := parseID(c, "comment_id")
	if !ok {
		return
	}

	result := db.DB.Where("post_id = ? AND id = ?", post.ID, commentID).Delete(&models.Comment{})
	if result.Error != nil {
		ServerError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		JSONError(c, http.StatusNotFound, "comment not found")
		return
	}

	c.Status(http.StatusNoContent)
}
