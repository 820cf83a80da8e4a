package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	apperrors "github.com/oncabito/sentinela/internal/shared/errors"
)

func TestSelectCategoryUseCase_Execute_Success(t *testing.T) {
	userID := int64(333)
	conv := activeConversation(t, userID)

	var updated *conversation.SupportConversation
	convRepo := &mockConversationRepository{
		FindActiveByUserFunc: func(ctx context.Context, id int64) (*conversation.SupportConversation, error) {
			return conv, nil
		},
		UpdateFunc: func(ctx context.Context, c *conversation.SupportConversation) error {
			updated = c
			return nil
		},
	}

	refreshed := false
	guard := &mockConversationGuard{
		RefreshFunc: func(ctx context.Context, id int64) error {
			refreshed = true
			return nil
		},
	}

	useCase := NewSelectCategoryUseCase(convRepo, guard, &mockLogger{})

	result, err := useCase.Execute(context.Background(), SelectCategoryCommand{
		TelegramUserID: userID,
		Category:       "equipment",
	})
	require.NoError(t, err)

	assert.Equal(t, "game", result.Conversation.Step)
	assert.Equal(t, "equipment", result.Conversation.Category)
	require.NotNil(t, updated)
	assert.True(t, refreshed)
}

func TestSelectCategoryUseCase_Execute_UnknownCategory(t *testing.T) {
	userID := int64(333)
	conv := activeConversation(t, userID)

	convRepo := &mockConversationRepository{
		FindActiveByUserFunc: func(ctx context.Context, id int64) (*conversation.SupportConversation, error) {
			return conv, nil
		},
		UpdateFunc: func(ctx context.Context, c *conversation.SupportConversation) error {
			t.Fatal("rejected input must not be persisted")
			return nil
		},
	}

	useCase := NewSelectCategoryUseCase(convRepo, &mockConversationGuard{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), SelectCategoryCommand{
		TelegramUserID: userID,
		Category:       "weather",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestSelectCategoryUseCase_Execute_NoActiveConversation(t *testing.T) {
	useCase := NewSelectCategoryUseCase(&mockConversationRepository{}, &mockConversationGuard{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), SelectCategoryCommand{
		TelegramUserID: 333,
		Category:       "connectivity",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
