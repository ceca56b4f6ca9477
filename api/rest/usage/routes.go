package usage

import (
	"github.com/gin-gonic/gin"
)

// registers quota read routes on an authenticated group
func RegisterRoutes(router *gin.RouterGroup, checker LimitChecker, reporter SummaryReporter) {
	usageGroup := router.Group("/usage")
	{
		usageGroup.GET("/check", CheckHandler(checker))
		usageGroup.GET("/summary", SummaryHandler(reporter))
	}
}
