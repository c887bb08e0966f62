package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/models"
	"blogapi/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// envelope mirrors the list response shape.
type envelope struct {
	Count    int64             `json:"count"`
	Next     *string           `json:"next"`
	Previous *string           `json:"previous"`
	Results  []json.RawMessage `json:"results"`
}

// setupRouter wires the real route table against a fresh in-memory
// database. Throttling is off unless the test passes a limit.
func setupRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory DB.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))
	db.DB = gdb

	if cfg.PageSize == 0 {
		cfg.PageSize = 10
	}
	return router.New(cfg)
}

func doJSON(t *testing.T, r *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// Fixtures get explicit, strictly increasing timestamps so tests that
// assert on created_at ordering are deterministic.
var fixtureClock = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func nextTimestamp() time.Time {
	fixtureClock = fixtureClock.Add(time.Second)
	return fixtureClock
}

func createPost(t *testing.T, title, author string) models.Post {
	t.Helper()
	ts := nextTimestamp()
	post := models.Post{Title: title, Content: "content of " + title, Author: author, CreatedAt: ts, UpdatedAt: ts}
	require.NoError(t, db.DB.Create(&post).Error)
	return post
}

func createComment(t *testing.T, postID uint, content string) models.Comment {
	t.Helper()
	ts := nextTimestamp()
	comment := models.Comment{PostID: postID, Content: content, Author: "commenter", CreatedAt: ts, UpdatedAt: ts}
	require.NoError(t, db.DB.Omit("Post").Create(&comment).Error)
	return comment
}

func createCategory(t *testing.T, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.DB.Create(&category).Error)
	return category
}

func postPath(id uint, rest string) string {
	return fmt.Sprintf("/api/posts/%d%s", id, rest)
}
