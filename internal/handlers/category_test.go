package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"blogapi/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type categoryBody struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	PostCount int64  `json:"post_count"`
}

func TestListCategories(t *testing.T) {
	r := setupRouter(t, config.Config{})
	createCategory(t, "Tech")
	createCategory(t, "Announcements")
	life := createCategory(t, "Life")

	w := doJSON(t, r, http.MethodPost, "/api/posts", map[string]any{
		"title": "Tagged", "content": "text", "author": "alice", "categories": []uint{life.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	list := decode[envelope](t, w)
	assert.Equal(t, int64(3), list.Count)
	require.Len(t, list.Results, 3)

	names := make([]string, 0, 3)
	counts := map[string]int64{}
	for _, raw := range list.Results {
		var item categoryBody
		require.NoError(t, json.Unmarshal(raw, &item))
		names = append(names, item.Name)
		counts[item.Name] = item.PostCount
	}
	assert.Equal(t, []string{"Announcements", "Life", "Tech"}, names, "ordered by name ascending")
	assert.Equal(t, int64(1), counts["Life"])
	assert.Equal(t, int64(0), counts["Tech"])
}

func TestRetrieveCategory(t *testing.T) {
	r := setupRouter(t, config.Config{})
	tech := createCategory(t, "Tech")

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/categories/%d", tech.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[categoryBody](t, w)
	assert.Equal(t, tech.ID, body.ID)
	assert.Equal(t, "Tech", body.Name)
}

func TestRetrieveCategoryNotFound(t *testing.T) {
	r := setupRouter(t, config.Config{})

	w := doJSON(t, r, http.MethodGet, "/api/categories/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoriesAreReadOnly(t *testing.T) {
	r := setupRouter(t, config.Config{})

	w := doJSON(t, r, http.MethodPost, "/api/categories", map[string]any{"name": "Hacked"})
	assert.Equal(t, http.StatusNotFound, w.Code, "no create route is registered")

	tech := createCategory(t, "Tech")
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/categories/%d", tech.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "no delete route is registered")
}
