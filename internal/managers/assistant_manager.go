package managers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"

	"github.com/rs/xid"
)

const assistantSystemPrompt = "You are the built-in assistant of a freelancer management workspace. " +
	"Help the user with clients, projects, invoicing, expenses and planning. " +
	"Answer concisely and never invent data the user has not provided."

// conversationTitleLimit bounds the title derived from the first message.
const conversationTitleLimit = 60

type assistantManager struct {
	conversationRepository domain.ConversationRepository
	languageModel          domain.LanguageModel
}

type AssistantManagerDependencies struct {
	ConversationRepository domain.ConversationRepository
	LanguageModel          domain.LanguageModel
}

func NewAssistantManager(deps AssistantManagerDependencies) domain.AssistantService {
	return &assistantManager{
		conversationRepository: deps.ConversationRepository,
		languageModel:          deps.LanguageModel,
	}
}

func (m *assistantManager) ListConversations(ctx context.Context, userID string) ([]domain.Conversation, error) {
	conversations, err := m.conversationRepository.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, nil
}

func (m *assistantManager) GetConversation(ctx context.Context, userID, conversationID string) (domain.Conversation, error) {
	conversation, err := m.conversationRepository.Get(ctx, userID, conversationID)
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conversation, nil
}

// SendMessage appends the user message, asks the model for a reply with the
// full history, appends the reply and persists the conversation. One request,
// one response; no streaming, no retry.
func (m *assistantManager) SendMessage(ctx context.Context, params domain.SendMessageParams) (domain.SendMessageResult, error) {
	content := strings.TrimSpace(params.Content)
	if content == "" {
		return domain.SendMessageResult{}, domain.NewValidationError("content", "must not be empty")
	}

	now := time.Now().UTC()

	var conversation domain.Conversation
	if params.ConversationID == "" {
		conversation = domain.Conversation{
			ID:        xid.New().String(),
			UserID:    params.UserID,
			Title:     deriveTitle(content),
			CreatedAt: now,
		}
	} else {
		existing, err := m.conversationRepository.Get(ctx, params.UserID, params.ConversationID)
		if err != nil {
			return domain.SendMessageResult{}, fmt.Errorf("failed to get conversation: %w", err)
		}
		conversation = existing
	}

	conversation.Messages = append(conversation.Messages, domain.ChatMessage{
		Role:      domain.ChatRoleUser,
		Content:   content,
		CreatedAt: now,
	})

	replyContent, err := m.languageModel.Generate(ctx, assistantSystemPrompt, conversation.Messages)
	if err != nil {
		return domain.SendMessageResult{}, fmt.Errorf("failed to generate reply: %w", err)
	}

	reply := domain.ChatMessage{
		Role:      domain.ChatRoleAssistant,
		Content:   replyContent,
		CreatedAt: time.Now().UTC(),
	}
	conversation.Messages = append(conversation.Messages, reply)
	conversation.UpdatedAt = reply.CreatedAt

	if err := m.conversationRepository.Upsert(ctx, conversation); err != nil {
		return domain.SendMessageResult{}, fmt.Errorf("failed to save conversation: %w", err)
	}

	return domain.SendMessageResult{Conversation: conversation, Reply: reply}, nil
}

func deriveTitle(content string) string {
	title := strings.Join(strings.Fields(content), " ")
	if len(title) > conversationTitleLimit {
		title = title[:conversationTitleLimit]
	}
	return title
}

func (m *assistantManager) DeleteConversation(ctx context.Context, userID, conversationID string) error {
	if err := m.conversationRepository.Delete(ctx, userID, conversationID); err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	return nil
}
