package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/talent-agency-service/internal/listing"
	"github.com/maxviazov/talent-agency-service/internal/service"
	"github.com/maxviazov/talent-agency-service/pkg/response"
)

// bindJSON decodes the body into dst. Syntax and type errors become a single
// "body" field error; the service layer reports field-level problems itself.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		msg := "must be a valid JSON object"
		if errors.Is(err, io.EOF) {
			msg = "is required"
		}
		response.WriteError(c, service.InvalidInput("body", msg))
		return false
	}
	return true
}

// listQuery parses page/limit and one optional equality filter from the query string.
func listQuery(c *gin.Context, filter listing.Filter, defaultLimit int) listing.Query {
	return listing.Query{
		Filter: filter,
		Page:   listing.ParsePageRequest(c.Query("page"), c.Query("limit"), defaultLimit),
	}
}
