package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var ErrEmptyParameter = errors.New("empty parameter")

func ParseIDParam(c *gin.Context, param string) (uint, error) {
	idStr := c.Param(param)
	if idStr == "" {
		return 0, ErrEmptyParameter
	}
	idUint64, err := strconv.ParseUint(idStr, 10, 64)
	return uint(idUint64), err
}

// ParsePaging reads page and limit query params, defaulting to page 1 and 20 items.
func ParsePaging(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
