package routes

import (
	"fitstride/controllers"

	"github.com/gin-gonic/gin"
)

func SendFriendRequestRouteHandler(ctx *gin.Context) {
	controllers.SendFriendRequest(ctx)
}

func AcceptFriendRequestRouteHandler(ctx *gin.Context) {
	controllers.AcceptFriendRequest(ctx)
}

func DeclineFriendRequestRouteHandler(ctx *gin.Context) {
	controllers.DeclineFriendRequest(ctx)
}

func RemoveFriendRouteHandler(ctx *gin.Context) {
	controllers.RemoveFriend(ctx)
}

func GetFriendsRouteHandler(ctx *gin.Context) {
	controllers.GetFriends(ctx)
}

func GetPendingRequestsRouteHandler(ctx *gin.Context) {
	controllers.GetPendingRequests(ctx)
}
