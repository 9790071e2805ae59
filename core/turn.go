package core

// Conversation roles used throughout the pipeline. The set is closed: every
// turn carries exactly one of these.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single role/content record of a conversation. Turns are treated
// as immutable once appended to a History.
type Turn struct {
	Role    string `json:"role"`    // One of RoleSystem, RoleUser, RoleAssistant
	Content string `json:"content"` // Plain UTF-8 text
}

// UserTurn constructs a user turn.
func UserTurn(content string) Turn { return Turn{Role: RoleUser, Content: content} }

// AssistantTurn constructs an assistant turn.
func AssistantTurn(content string) Turn { return Turn{Role: RoleAssistant, Content: content} }

// SystemTurn constructs a system turn.
func SystemTurn(content string) Turn { return Turn{Role: RoleSystem, Content: content} }
