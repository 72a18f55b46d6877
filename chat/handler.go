package chat

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eupern/ai-cancer-chatbot/openai"
	"github.com/eupern/ai-cancer-chatbot/sse"
)

// defaultPreamble steers the assistant for every session. Overridable via
// CHAT_PREAMBLE.
const defaultPreamble = "You are an expert oncology dietitian and clinical-support assistant. " +
	"Provide a concise clinical summary, 3 suggested practical questions for the next doctor " +
	"visit (not diet), and dietitian-level dietary advice including a clear 1-day sample menu " +
	"separated by spacing. Write in plain English."

// AIClient is the subset of openai.Client the chat flow needs.
type AIClient interface {
	StreamConversation(ctx context.Context, messages []openai.Message) (<-chan string, error)
}

type Handler struct {
	AI       AIClient
	sessions *Store
}

func NewHandler(ai AIClient) *Handler {
	return &Handler{AI: ai, sessions: NewStore()}
}

// RegisterRoutes wires the conversation endpoints.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/chat/start", h.Start)
	r.POST("/chat/message", h.Message)
	r.GET("/chat/history", h.History)
}

// Start opens a fresh session and returns its id.
func (h *Handler) Start(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"session_id": h.sessions.Create()})
}

type messageReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// Message appends the user's turn, sends the preamble plus full history to the
// external service and streams the reply over SSE. The assistant's reply is
// recorded in the session once the stream drains so follow-ups keep context.
func (h *Handler) Message(c *gin.Context) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id and message required"})
		return
	}
	if req.SessionID == "" {
		req.SessionID = h.sessions.Create()
	}

	h.sessions.Append(req.SessionID, openai.Message{Role: openai.RoleUser, Content: strings.TrimSpace(req.Message)})

	msgs := append([]openai.Message{{Role: openai.RoleSystem, Content: preamble()}}, h.sessions.History(req.SessionID)...)
	stream, err := h.AI.StreamConversation(c.Request.Context(), msgs)
	if err != nil {
		log.Printf("[chat][message] session=%s generation call failed: %v", req.SessionID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "text generation unavailable"})
		return
	}

	// Tee the stream: forward tokens to the client while collecting the full
	// reply for the session history.
	out := make(chan string)
	var reply strings.Builder
	go func() {
		defer close(out)
		for token := range stream {
			reply.WriteString(token)
			out <- token
		}
		if reply.Len() > 0 {
			h.sessions.Append(req.SessionID, openai.Message{Role: openai.RoleAssistant, Content: reply.String()})
		}
	}()

	c.Header("X-Session-Id", req.SessionID)
	sse.Stream(c, out)
}

// History returns the session's turns for the presentation layer to render.
func (h *Handler) History(c *gin.Context) {
	id := c.Query("session_id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": id, "messages": h.sessions.History(id)})
}

func preamble() string {
	if v := strings.TrimSpace(os.Getenv("CHAT_PREAMBLE")); v != "" {
		return v
	}
	return defaultPreamble
}
