package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/airpulse-io/airpulse/gateway/ws"
	"github.com/airpulse-io/airpulse/routing"
)

// SubscribeAll upgrades to a websocket streaming every alert.
func (ctrl *Controller) SubscribeAll(c *gin.Context) {
	if err := ws.ServeWS(ctrl.Hub, ws.CatchAllChannel, c.Writer, c.Request); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(c.Request.Context(), err, "WebSocket upgrade failed")
	}
}

// SubscribeArea upgrades to a websocket streaming one area's alerts.
func (ctrl *Controller) SubscribeArea(c *gin.Context) {
	channel := routing.NormalizeSegment(c.Param("area"))
	if err := ws.ServeWS(ctrl.Hub, channel, c.Writer, c.Request); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(c.Request.Context(), err, "WebSocket upgrade failed for area %s", channel)
	}
}
