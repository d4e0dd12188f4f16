package routes

import (
	"fitstride/controllers"

	"github.com/gin-gonic/gin"
)

func GetNotificationsRouteHandler(ctx *gin.Context) {
	controllers.GetNotifications(ctx)
}

func MarkNotificationReadRouteHandler(ctx *gin.Context) {
	controllers.MarkNotificationRead(ctx)
}
