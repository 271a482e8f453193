package requests

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"modelhub-server/internal/domain/query"
)

// ParsePagination reads limit/offset query parameters. Bad values fall back
// to the defaults rather than failing the request.
func ParsePagination(c *gin.Context) *query.Pagination {
	p := &query.Pagination{}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			p.Limit = &limit
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset >= 0 {
			p.Offset = &offset
		}
	}
	return p
}

// OptionalQuery returns a pointer to the query value when present.
func OptionalQuery(c *gin.Context, name string) *string {
	if raw := c.Query(name); raw != "" {
		return &raw
	}
	return nil
}
