package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/airpulse-io/airpulse/gateway/controller"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	apiRoutes := r.Group("/api/v1")
	{
		alertRoutes := apiRoutes.Group("/alerts")
		{
			alertRoutes.GET("/", ctrl.ListAlerts)
			alertRoutes.GET("/latest/:area", ctrl.GetLatestAlertByArea)
		}
	}

	r.GET("/ws/alerts", ctrl.SubscribeAll)
	r.GET("/ws/alerts/:area", ctrl.SubscribeArea)

	return r
}
