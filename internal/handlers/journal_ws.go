package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsReadLimit    = 64 * 1024
	wsReadTimeout  = 90 * time.Second
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
)

// JournalWebSocket streams store events so display screens know when to
// refetch. Client messages are read only to track liveness.
func (h *Handler) JournalWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.originAllowed,
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	events, unsubscribe := h.Hub.Subscribe()
	defer unsubscribe()
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()
	defer conn.Close()

	log := h.Log.With().Str("remote", r.RemoteAddr).Logger()
	log.Debug().Msg("journal websocket connected")

	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(wsReadLimit)
		_ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			log.Debug().Msg("journal websocket closed by client")
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(evt); err != nil {
				log.Debug().Err(err).Msg("journal websocket write failed")
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout)); err != nil {
				return
			}
		}
	}
}
