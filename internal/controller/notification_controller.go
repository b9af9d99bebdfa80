package controller

import (
	"mindmate_backend/internal/service"
	"mindmate_backend/internal/util"
	"mindmate_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NotificationController struct {
	Hub *service.NotificationHub
}

func NewNotificationController(hub *service.NotificationHub) *NotificationController {
	return &NotificationController{Hub: hub}
}

// Connect godoc
// @Summary Open a websocket for server pushed notifications
// @Description Authenticate with the usual Bearer header or a token query
// @Description parameter, since browsers cannot set websocket headers.
// @Tags notifications
// @Security ApiKeyAuth
// @Router /ws [get]
func (c *NotificationController) Connect(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.Hub.Serve(ctx.Writer, ctx.Request, claims.UserID); err != nil {
		logger.Log.Warn("websocket session ended with error",
			zap.Uint("user_id", claims.UserID), zap.Error(err))
	}
}
