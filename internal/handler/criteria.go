package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/haemolab/lab-api/internal/filter"
)

// CriteriaFromQuery builds list filter criteria from the standard query
// params every list endpoint accepts: q, category, status, range.
// Missing or unknown values fall through to "no constraint".
func CriteriaFromQuery(c *gin.Context) filter.Criteria {
	return filter.Criteria{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Bound:    filter.BoundaryFor(c.Query("range")),
	}
}
