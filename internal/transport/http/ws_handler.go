package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"certstudy-service/internal/domain"
	"certstudy-service/internal/quiz"
)

// WSHandler drives quiz sessions over websockets: one connection is one
// attempt. Every inbound action is applied to the session and answered with
// a fresh view snapshot, so the client never computes quiz state itself.
type WSHandler struct {
	service  *quiz.Service
	upgrader websocket.Upgrader
}

func NewWSHandler(service *quiz.Service) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type selectPayload struct {
	OptionID string `json:"optionId"`
}

type matchPayload struct {
	ItemID string `json:"itemId"`
}

type jumpPayload struct {
	Index int `json:"index"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request and runs the quiz session loop until the
// client disconnects.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	course := r.URL.Query().Get("course")
	quizID := r.URL.Query().Get("quizId")
	if course == "" || quizID == "" {
		http.Error(w, "missing course or quizId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	session, err := h.service.Start(r.Context(), course, quizID)
	if err != nil {
		msg := "failed to load quiz"
		if errors.Is(err, domain.ErrQuizNotFound) || errors.Is(err, domain.ErrCourseNotFound) {
			msg = "quiz not found"
		}
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: msg}})
		return
	}
	defer h.service.End(session.ID())

	if err := conn.WriteJSON(outboundMessage[quiz.View]{Type: "view", Payload: session.Snapshot()}); err != nil {
		return
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		if !h.apply(conn, session, inbound) {
			continue
		}
		if err := conn.WriteJSON(outboundMessage[quiz.View]{Type: "view", Payload: session.Snapshot()}); err != nil {
			break
		}
	}
}

// apply dispatches one action onto the session. It reports whether a view
// snapshot should follow; malformed or unknown messages get an error payload
// instead.
func (h *WSHandler) apply(conn *websocket.Conn, session *quiz.Session, inbound inboundMessage) bool {
	switch inbound.Type {
	case "select":
		var payload selectPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return h.sendError(conn, "invalid select payload")
		}
		session.SelectOption(payload.OptionID)
	case "matchA":
		var payload matchPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return h.sendError(conn, "invalid matchA payload")
		}
		session.SelectMatchA(payload.ItemID)
	case "matchB":
		var payload matchPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return h.sendError(conn, "invalid matchB payload")
		}
		session.SelectMatchB(payload.ItemID)
	case "jump":
		var payload jumpPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return h.sendError(conn, "invalid jump payload")
		}
		session.Jump(payload.Index)
	case "submit":
		session.Submit()
	case "tryAgain":
		session.TryAgain()
	case "next":
		session.Next()
	case "previous":
		session.Previous()
	case "review":
		session.Review()
	case "reset":
		session.Reset()
	default:
		return h.sendError(conn, "unknown message type: "+inbound.Type)
	}
	return true
}

func (h *WSHandler) sendError(conn *websocket.Conn, message string) bool {
	_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: message}})
	return false
}
