package routes

import (
	"fitstride/controllers"

	"github.com/gin-gonic/gin"
)

func LogWorkoutRouteHandler(ctx *gin.Context) {
	controllers.LogWorkout(ctx)
}

func GetWorkoutsRouteHandler(ctx *gin.Context) {
	controllers.GetWorkouts(ctx)
}

func LogNutritionRouteHandler(ctx *gin.Context) {
	controllers.LogNutrition(ctx)
}

func GetNutritionLogsRouteHandler(ctx *gin.Context) {
	controllers.GetNutritionLogs(ctx)
}

func LogWaterRouteHandler(ctx *gin.Context) {
	controllers.LogWater(ctx)
}

func GetWaterLogsRouteHandler(ctx *gin.Context) {
	controllers.GetWaterLogs(ctx)
}

func LogWeightRouteHandler(ctx *gin.Context) {
	controllers.LogWeight(ctx)
}

func GetWeightHistoryRouteHandler(ctx *gin.Context) {
	controllers.GetWeightHistory(ctx)
}

func GetProgressHistoryRouteHandler(ctx *gin.Context) {
	controllers.GetProgressHistory(ctx)
}
