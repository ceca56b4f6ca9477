package dashboard

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, reporter StatsReporter) {
	router.GET("/dashboard/stats", StatsHandler(reporter))
}
