package models

// ConversationTurn is one exchange in a caller's session history.
type ConversationTurn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// CallSession is the per-caller conversation state held in the session store.
// The scheduling core never reads or writes it; only the assistant layer does.
type CallSession struct {
	CallID  string             `json:"callId"`
	History []ConversationTurn `json:"history"`
}
