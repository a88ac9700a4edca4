package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/teamlens/teamlens/internal/rag"
	"github.com/teamlens/teamlens/internal/vectordb"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// chatRequest is the incoming WebSocket message format.
type chatRequest struct {
	Type    string `json:"type"` // "ask" or "search"
	Mode    string `json:"mode"` // "profile" or "anonymous", ask only
	Content string `json:"content"`
}

// chatResponse is the outgoing WebSocket message format.
type chatResponse struct {
	Type    string  `json:"type"` // "response" or "error"
	Content string  `json:"content"`
	Mode    string  `json:"mode,omitempty"`
	CostUSD float64 `json:"cost_usd,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		var req chatRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendChatError(conn, "invalid message format")
			continue
		}

		if req.Content == "" {
			s.sendChatError(conn, "content is required")
			continue
		}

		switch req.Type {
		case "ask":
			s.handleChatAsk(conn, r, req)
		case "search":
			s.handleChatSearch(conn, r, req)
		default:
			s.sendChatError(conn, "unknown message type: "+req.Type)
		}
	}
}

func (s *Server) handleChatAsk(conn *websocket.Conn, r *http.Request, req chatRequest) {
	mode := rag.ModeProfile
	if req.Mode != "" {
		var err error
		mode, err = rag.ParseMode(req.Mode)
		if err != nil {
			s.sendChatError(conn, err.Error())
			return
		}
	}

	answer, err := s.engine.Answer(r.Context(), req.Content, mode)
	if err != nil {
		s.sendChatError(conn, "question failed: "+err.Error())
		return
	}

	s.recordAnswer(r, req.Content, answer)

	s.sendChatResponse(conn, chatResponse{
		Type:    "response",
		Content: answer.Text,
		Mode:    string(answer.Mode),
		CostUSD: answer.CostUSD,
	})
}

func (s *Server) handleChatSearch(conn *websocket.Conn, r *http.Request, req chatRequest) {
	results, err := s.store.Search(r.Context(), req.Content, 5, nil)
	if err != nil {
		s.sendChatError(conn, "search failed: "+err.Error())
		return
	}

	s.sendChatResponse(conn, chatResponse{
		Type:    "response",
		Content: vectordb.FormatResults(results),
	})
}

func (s *Server) sendChatResponse(conn *websocket.Conn, resp chatResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("server: websocket write: %v", err)
	}
}

func (s *Server) sendChatError(conn *websocket.Conn, message string) {
	resp := chatResponse{
		Type:    "error",
		Content: message,
	}
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("server: websocket write error: %v", err)
	}
}
