package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/magi8101/form-builder/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      WebSocket feed of new responses
// @Description  Connect via WebSocket to receive response.created events for a form
// @Tags         websocket
// @Param        id path int true "Form ID"
// @Router       /ws/forms/{id} [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	formID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid form id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	fid := uint(formID)
	h.hub.AddConnection(fid, conn)
	defer h.hub.RemoveConnection(fid, conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
