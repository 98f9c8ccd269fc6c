package schema

// Message is one entry of the conversation transcript.
type Message struct {
	ID          string      `json:"id"`
	Role        Role        `json:"role"`
	Text        string      `json:"text"`
	RevealState RevealState `json:"reveal_state"`
}

// IsPlaceholder reports whether the message is the in-flight "thinking" stand-in.
func (m Message) IsPlaceholder() bool {
	return m.Role == RoleAssistant && m.RevealState == RevealPending
}
