package generate

import (
	"github.com/gin-gonic/gin"
)

// registers idea generation on an authenticated group. Extra middleware
// (rate limiting) runs before the handler.
func RegisterRoutes(router *gin.RouterGroup, generator Generator, middleware ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, middleware...), Handler(generator))
	router.POST("/ideas/generate", handlers...)
}
