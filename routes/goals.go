package routes

import (
	"fitstride/controllers"

	"github.com/gin-gonic/gin"
)

func CreateGoalRouteHandler(ctx *gin.Context) {
	controllers.CreateGoal(ctx)
}

func GetGoalsRouteHandler(ctx *gin.Context) {
	controllers.GetGoals(ctx)
}

func UpdateGoalRouteHandler(ctx *gin.Context) {
	controllers.UpdateGoal(ctx)
}

func DeleteGoalRouteHandler(ctx *gin.Context) {
	controllers.DeleteGoal(ctx)
}
