package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/portal-go/internal/events"
	"github.com/linskybing/portal-go/pkg/logger"
	"github.com/linskybing/portal-go/pkg/utils"
)

type EventsHandler struct {
	Responder
	hub      *events.Hub
	upgrader websocket.Upgrader
}

// NewEventsHandler accepts upgrades from the listed origins, or from any origin when the list is empty.
func NewEventsHandler(hub *events.Hub, origins []string, r Responder) *EventsHandler {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		allowed[o] = struct{}{}
	}
	return &EventsHandler{
		Responder: r,
		hub:       hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(req *http.Request) bool {
				origin := req.Header.Get("Origin")
				if origin == "" || len(allowed) == 0 {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
	}
}

// Stream godoc
// @Summary Live request events
// @Description Websocket. Staff receive every request event, customers only their own.
// @Tags events
// @Security BearerAuth
// @Param token query string false "JWT when headers cannot be set"
// @Success 101
// @Failure 401 {object} response.ErrorResponse
// @Router /ws/events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		h.Error(c, utils.ErrNoClaims)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", logger.Error(err))
		return
	}
	h.hub.Serve(conn, claims.UserID, claims.IsStaff())
}
