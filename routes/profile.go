package routes

import (
	"fitstride/controllers"

	"github.com/gin-gonic/gin"
)

func GetProfileRouteHandler(ctx *gin.Context) {
	controllers.GetProfile(ctx)
}

func UpdateProfileRouteHandler(ctx *gin.Context) {
	controllers.UpdateProfile(ctx)
}

func GetUserProfileRouteHandler(ctx *gin.Context) {
	controllers.GetUserProfile(ctx)
}
