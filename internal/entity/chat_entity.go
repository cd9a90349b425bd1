package entity

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Id            string       `json:"id"`
	Role          ChatRole     `json:"role"`
	Content       string       `json:"content"`
	Timestamp     int64        `json:"timestamp"`
	Sources       []ChatSource `json:"sources,omitempty"`
	ImageUrl      string       `json:"imageUrl,omitempty"`
	SuggestedSave bool         `json:"suggestedSave,omitempty"`
}

// ChatSource is a web citation returned by a grounded-search reply.
type ChatSource struct {
	Uri   string `json:"uri"`
	Title string `json:"title"`
}

// ChatSession groups workspace-mode messages. Search mode bypasses
// sessions and appends to the flat search history collection instead.
type ChatSession struct {
	Id         string        `json:"id"`
	Title      string        `json:"title"`
	Messages   []ChatMessage `json:"messages"`
	LastUpdate int64         `json:"lastUpdate"`
}
