package dashboard

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// selectRequest is the incoming WebSocket message format.
type selectRequest struct {
	Type string `json:"type"` // "select"
	Page string `json:"page"`
}

// pageMessage is the outgoing WebSocket message format.
type pageMessage struct {
	Type      string `json:"type"` // "page" or "error"
	SessionID string `json:"session_id"`
	Page      string `json:"page,omitempty"`
	HTML      string `json:"html,omitempty"`
	Message   string `json:"message,omitempty"`
}

// handleWebSocket re-renders the main panel every time the client selects
// a page. Each connection is an independent session.
func (d *Dashboard) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("dashboard: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("dashboard: websocket read (session %s): %v", sessionID, err)
			}
			return
		}

		var req selectRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			d.sendError(conn, sessionID, "invalid message format")
			continue
		}

		switch req.Type {
		case "select":
			content, err := d.renderContent(r, req.Page)
			if err != nil {
				d.sendError(conn, sessionID, err.Error())
				continue
			}
			d.send(conn, pageMessage{
				Type:      "page",
				SessionID: sessionID,
				Page:      req.Page,
				HTML:      string(content),
			})
		default:
			d.sendError(conn, sessionID, "unknown message type: "+req.Type)
		}
	}
}

func (d *Dashboard) send(conn *websocket.Conn, msg pageMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("dashboard: websocket write: %v", err)
	}
}

func (d *Dashboard) sendError(conn *websocket.Conn, sessionID, message string) {
	d.send(conn, pageMessage{
		Type:      "error",
		SessionID: sessionID,
		Message:   message,
	})
}
