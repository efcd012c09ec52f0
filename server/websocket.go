package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/tailored-agentic-units/janken/match"
)

// WebSocket message types. Clients send play, history, and ping; the server
// answers with result, history, pong, or error.
const (
	wsPlay    = "play"
	wsHistory = "history"
	wsPing    = "ping"
	wsResult  = "result"
	wsPong    = "pong"
	wsError   = "error"
)

const (
	wsReadLimit    = 4096
	wsWriteWait    = 10 * time.Second
	wsPingInterval = 30 * time.Second
	wsPongWait     = 60 * time.Second
	wsSendBuffer   = 16
)

var errUnknownMessage = errors.New("unknown message type")

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// playSocket keeps one session open for continuous play. The session must
// exist before the connection is upgraded. A connection that sends nothing
// and answers no ping for pongWait is closed.
func (s *Server) playSocket(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.svc.History(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || originAllowed(s.cfg.AllowOrigins, origin)
		},
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	conn.SetReadLimit(wsReadLimit)
	extend := func() error { return conn.SetReadDeadline(time.Now().Add(s.pongWait)) }
	extend()
	conn.SetPongHandler(func(string) error { return extend() })

	send := make(chan []byte, wsSendBuffer)
	done := make(chan struct{})
	go func() {
		defer close(done)
		writeWSWithHeartbeat(conn, send, s.pingInterval)
		conn.Close()
	}()
	defer func() {
		close(send)
		<-done
	}()

	ctx := c.Request.Context()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		extend()

		var typ string
		var payload any
		var msg wsMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			typ, payload = wsError, newErrorResponse(http.StatusBadRequest, err)
		} else {
			typ, payload = s.dispatch(ctx, id, msg)
		}

		frame, err := encodeWS(typ, payload)
		if err != nil {
			return
		}
		select {
		case send <- frame:
		case <-done:
			return
		}
	}
}

func (s *Server) dispatch(ctx context.Context, id string, msg wsMessage) (string, any) {
	switch msg.Type {
	case wsPing:
		return wsPong, nil
	case wsHistory:
		history, err := s.svc.History(ctx, id)
		if err != nil {
			return wsError, newErrorResponse(statusOf(err), err)
		}
		return wsHistory, newHistoryResponse(history)
	case wsPlay:
		var req playRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return wsError, newErrorResponse(http.StatusBadRequest, err)
		}
		result, err := s.svc.Play(ctx, match.PlayRequest{
			SessionID: id,
			Move:      req.PlayerChoice,
			Player:    req.AIPlayer,
			Language:  req.Language,
		})
		if err != nil {
			return wsError, newErrorResponse(statusOf(err), err)
		}
		return wsResult, newPlayResponse(result)
	default:
		return wsError, newErrorResponse(http.StatusBadRequest, errUnknownMessage)
	}
}

// writeWSWithHeartbeat is the only writer on conn. It drains send and pings
// the peer every interval until send is closed or a write fails.
func writeWSWithHeartbeat(conn *websocket.Conn, send <-chan []byte, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return nil
			}
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return err
			}
		}
	}
}

func encodeWS(typ string, payload any) ([]byte, error) {
	msg := wsMessage{Type: typ}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		msg.Payload = data
	}
	return json.Marshal(msg)
}
