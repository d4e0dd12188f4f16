package routes

import (
	"fitstride/controllers"

	"github.com/gin-gonic/gin"
)

func GetAchievementsRouteHandler(ctx *gin.Context) {
	controllers.GetAchievements(ctx)
}

func RefreshAchievementsRouteHandler(ctx *gin.Context) {
	controllers.RefreshAchievements(ctx)
}
