package websocket

const messageSessionStarted = "session_started"

// envelope is read first to pick the handler for a frame.
type envelope struct {
	Type string `json:"type"`
}

type sessionStarted struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}
