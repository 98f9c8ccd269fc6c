package schema

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// RevealState tracks how much of an assistant message is on screen.
type RevealState string

const (
	RevealPending   RevealState = "pending"   // placeholder while the request is in flight
	RevealStreaming RevealState = "streaming" // text known, reveal in progress
	RevealComplete  RevealState = "complete"  // fully displayed
)

// Fixed transcript texts.
const (
	GreetingText    = "Hello! I'm Adhibot, Adhithyan's AI assistant. How can I help you today?"
	PlaceholderText = "Thinking..."
	BetaNotice      = "Adhibot is currently in beta. Responses may occasionally be inaccurate or contain hallucinations."
)
