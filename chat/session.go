package chat

import (
	"sync"

	"github.com/google/uuid"

	"github.com/eupern/ai-cancer-chatbot/openai"
)

// Store keeps per-session conversation history in memory. Nothing is
// persisted: a session lives as long as the process, matching the original
// app's session-scoped conversation state.
type Store struct {
	mu       sync.RWMutex
	sessions map[string][]openai.Message
}

func NewStore() *Store {
	return &Store{sessions: make(map[string][]openai.Message)}
}

// Create registers a new empty session and returns its id.
func (s *Store) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = []openai.Message{}
	s.mu.Unlock()
	return id
}

// Append adds a turn to an existing session. Unknown ids are created lazily so
// a restarted server keeps accepting an old client's session id.
func (s *Store) Append(id string, msg openai.Message) {
	s.mu.Lock()
	s.sessions[id] = append(s.sessions[id], msg)
	s.mu.Unlock()
}

// History returns a copy of the session's turns, oldest first.
func (s *Store) History(id string) []openai.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]openai.Message(nil), s.sessions[id]...)
}
