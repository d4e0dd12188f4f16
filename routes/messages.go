package routes

import (
	"fitstride/controllers"

	"github.com/gin-gonic/gin"
)

func SendMessageRouteHandler(ctx *gin.Context) {
	controllers.SendMessage(ctx)
}

func GetConversationRouteHandler(ctx *gin.Context) {
	controllers.GetConversation(ctx)
}

func GetConversationsRouteHandler(ctx *gin.Context) {
	controllers.GetConversations(ctx)
}

func MarkConversationReadRouteHandler(ctx *gin.Context) {
	controllers.MarkConversationRead(ctx)
}
