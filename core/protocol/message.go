// Package protocol defines the chat message shapes exchanged with
// chat-completion backends.
package protocol

// Role identifies the sender of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewMessage creates a Message with the given role and content.
//
// Example:
//
//	msg := protocol.NewMessage(protocol.RoleUser, "Hello, world!")
func NewMessage(role Role, content string) Message {
	return Message{Role: role, Content: content}
}

// InitMessages creates a single-element message slice from a role and content string.
// Convenience wrapper for the common pattern of initializing a conversation from a prompt.
func InitMessages(role Role, content string) []Message {
	return []Message{NewMessage(role, content)}
}

// SystemPrompt prepends a system message to a single user prompt. An empty
// system string yields just the user message.
func SystemPrompt(system, user string) []Message {
	if system == "" {
		return InitMessages(RoleUser, user)
	}
	return []Message{
		NewMessage(RoleSystem, system),
		NewMessage(RoleUser, user),
	}
}
