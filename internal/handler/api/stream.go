package api

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	reqdto "closeout-market/internal/handler/dto/request"
	"closeout-market/internal/handler/httperr"
	"closeout-market/internal/handler/middleware"
	"closeout-market/internal/domain/user"
	"closeout-market/internal/pkg/config"
	"closeout-market/internal/pkg/sl"
	"closeout-market/internal/usecase/messaging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

type MessageSubscriber interface {
	Subscribe(ctx context.Context, principal user.Principal, channelID uuid.UUID, afterSeq int64) (*messaging.Subscription, error)
}

type StreamHandler struct {
	bus      MessageSubscriber
	upgrader websocket.Upgrader
}

func NewStreamHandler(bus MessageSubscriber, cors config.CORSConfig) *StreamHandler {
	allowed := cors.AllowOrigins
	return &StreamHandler{
		bus: bus,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
			},
		},
	}
}

// @Summary Stream channel messages
// @Description Websocket. Sends every message with seq > afterSeq as a JSON text frame, history first, then live.
// @Tags channels
// @Security BearerAuth
// @Param id path string true "Channel ID"
// @Param afterSeq query int false "Last seq the client has"
// @Success 101
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /channels/{id}/stream [get]
func (h *StreamHandler) Stream(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid channel id", nil)
		return
	}
	var q reqdto.HistoryQuery
	if err = c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Subscribe before upgrading so authorization failures get a normal HTTP status.
	sub, err := h.bus.Subscribe(ctx, middleware.GetPrincipal(c), id, q.AfterSeq)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer sub.Cancel()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", sl.Err(err))
		return
	}
	defer func() { _ = conn.Close() }()

	go readPump(conn, cancel)
	writePump(ctx, conn, sub)
}

// readPump only services control frames; any read error ends the stream.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func writePump(ctx context.Context, conn *websocket.Conn, sub *messaging.Subscription) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		case msg, ok := <-sub.C():
			if !ok {
				code, text := websocket.CloseNormalClosure, ""
				if err := sub.Err(); err != nil {
					code, text = websocket.CloseTryAgainLater, "stream interrupted"
					slog.Warn("message stream ended", sl.Err(err))
				}
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(code, text), time.Now().Add(writeWait))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
