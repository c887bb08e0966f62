package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// listEnvelope is the wire shape of every list endpoint: total count,
// next/previous page links (null at the edges) and the page items.
type listEnvelope struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

func pageNumber(c *gin.Context) int {
	page := 1
	if p := c.Query("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	return page
}

// paginate validates the requested page against the total and returns
// the query offset plus an envelope with the page links filled in.
// Pages past the end yield a 404; page 1 is always reachable, even when
// the result set is empty.
func paginate(c *gin.Context, total int64, pageSize int) (int, *listEnvelope, bool) {
	page := pageNumber(c)

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		JSONError(c, http.StatusNotFound, "invalid page")
		return 0, nil, false
	}

	env := &listEnvelope{Count: total}
	if page < totalPages {
		env.Next = pageURL(c, page+1)
	}
	if page > 1 {
		env.Previous = pageURL(c, page-1)
	}
	return (page - 1) * pageSize, env, true
}

func pageURL(c *gin.Context, page int) *string {
	u := *c.Request.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()

	s := u.String()
	if u.Host == "" && c.Request.Host != "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		s = scheme + "://" + c.Request.Host + s
	}
	return &s
}
