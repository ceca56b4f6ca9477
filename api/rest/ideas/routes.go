package ideas

import (
	"github.com/gin-gonic/gin"
)

// registers the saved-idea routes on an authenticated group
func RegisterRoutes(router *gin.RouterGroup, store IdeaStore) {
	ideasGroup := router.Group("/ideas")
	{
		ideasGroup.GET("", ListIdeasHandler(store))
		ideasGroup.POST("/save", SaveIdeaHandler(store))
		ideasGroup.GET("/:id", GetIdeaHandler(store))
		ideasGroup.PATCH("/:id", UpdateIdeaHandler(store))
		ideasGroup.DELETE("/:id", DeleteIdeaHandler(store))
	}
}
