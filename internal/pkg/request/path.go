package request

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/itemshare/item-sharing-backend/internal/pkg/apperror"
)

// PathID parses the named path parameter as a positive numeric id.
func PathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.InvalidInput("invalid " + name + " path parameter")
	}
	return id, nil
}
