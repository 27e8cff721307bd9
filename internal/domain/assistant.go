package domain

import (
	"context"
	"time"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Role      ChatRole  `bson:"role" json:"role"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type Conversation struct {
	ID        string        `bson:"id" json:"id"`
	UserID    string        `bson:"user_id" json:"user_id"`
	Title     string        `bson:"title" json:"title"`
	Messages  []ChatMessage `bson:"messages" json:"messages"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

type SendMessageParams struct {
	UserID         string
	ConversationID string // empty starts a new conversation
	Content        string
}

type SendMessageResult struct {
	Conversation Conversation `json:"conversation"`
	Reply        ChatMessage  `json:"reply"`
}

type AssistantService interface {
	ListConversations(ctx context.Context, userID string) ([]Conversation, error)
	GetConversation(ctx context.Context, userID, conversationID string) (Conversation, error)
	SendMessage(ctx context.Context, params SendMessageParams) (SendMessageResult, error)
	DeleteConversation(ctx context.Context, userID, conversationID string) error
}

type ConversationRepository interface {
	Upsert(ctx context.Context, conversation Conversation) error
	Get(ctx context.Context, userID, conversationID string) (Conversation, error)
	List(ctx context.Context, userID string) ([]Conversation, error)
	Delete(ctx context.Context, userID, conversationID string) error
}

// LanguageModel generates one assistant reply for a conversation history.
// No streaming and no retry; a transport failure surfaces to the caller.
type LanguageModel interface {
	Generate(ctx context.Context, system string, messages []ChatMessage) (string, error)
}
