package server

import "encoding/json"

// ClientMessage is what an editor sends to the share server. The only kind
// is "publish", carrying a solver board document.
type ClientMessage struct {
	Kind  string          `json:"kind"`
	Board json.RawMessage `json:"board,omitempty"`
}

// ServerMessage is what the share server pushes to connected editors:
// "board" with the latest published document, or "error" when a publish was
// rejected.
type ServerMessage struct {
	Kind  string          `json:"kind"`
	Board json.RawMessage `json:"board,omitempty"`
	Error string          `json:"error,omitempty"`
}

const (
	KindPublish = "publish"
	KindBoard   = "board"
	KindError   = "error"
)
