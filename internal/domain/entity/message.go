package entity

type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one turn of a generation request. ImageDataURL, when set,
// attaches an inline image (data URL) to a user message for vision models.
type Message struct {
	Role         MessageRole
	Content      string
	ImageDataURL string
}
