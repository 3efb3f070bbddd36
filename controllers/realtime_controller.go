package controllers

import (
	"net/http"
	"time"

	"github.com/ghada1234/nutritrack/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	RT *services.RealtimeHub
}

func NewRealtimeController(rt *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{RT: rt}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /ws/summary — streams summary.updated events for this session.
func (rc *RealtimeController) SummaryWS(c *gin.Context) {
	sid := c.GetString("sessionID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := services.NewWSClient(sid, conn)
	rc.RT.Register(cl)

	// send the current totals immediately so the first paint is correct
	if sum, err := ledger().Summary(sid); err == nil {
		rc.RT.BroadcastSummary(sid, sum)
	}

	// ping to keep connections alive through proxies; serialized against
	// broadcasts inside the client
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := cl.Ping(); err != nil {
				rc.RT.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error → unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}
