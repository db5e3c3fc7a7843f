package forms

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// created 返回 201 并设置 Location 为新资源地址
func created(c *gin.Context, id string, body interface{}) {
	c.Header("Location", strings.TrimSuffix(c.Request.URL.Path, "/")+"/"+id)
	c.JSON(http.StatusCreated, body)
}
