package routes

import (
	"fitstride/controllers"

	"github.com/gin-gonic/gin"
)

func GetDailyTipRouteHandler(ctx *gin.Context) {
	controllers.GetDailyTip(ctx)
}
