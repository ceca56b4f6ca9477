package scripts

import (
	"github.com/gin-gonic/gin"
)

// registers script generation on an authenticated group. Extra middleware
// runs before the handler.
func RegisterRoutes(router *gin.RouterGroup, generator Generator, middleware ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, middleware...), Handler(generator))
	router.POST("/scripts/generate", handlers...)
}
