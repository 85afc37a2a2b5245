package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/airpulse-io/airpulse/producer/controller"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	apiRoutes := r.Group("/api/v1")
	{
		locationRoutes := apiRoutes.Group("/location")
		{
			locationRoutes.GET("/:position", ctrl.GetMeasurementsByPosition)
			locationRoutes.GET("/city/:city/position/:position", ctrl.GetMeasurementsByCityAndPosition)
			locationRoutes.GET("/city/:city/positions", ctrl.GetPositionsForCity)
		}
	}
	return r
}
