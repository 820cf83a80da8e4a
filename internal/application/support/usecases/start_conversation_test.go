package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncabito/sentinela/internal/domain/conversation"
	apperrors "github.com/oncabito/sentinela/internal/shared/errors"
)

func activeConversation(t *testing.T, userID int64) *conversation.SupportConversation {
	t.Helper()

	conv, err := conversation.NewSupportConversation(userID)
	require.NoError(t, err)
	conv.PullEvents()
	require.NoError(t, conv.SetID(1))
	return conv
}

func TestStartConversationUseCase_Execute_Fresh(t *testing.T) {
	userID := int64(111)

	var saved *conversation.SupportConversation
	convRepo := &mockConversationRepository{
		SaveFunc: func(ctx context.Context, c *conversation.SupportConversation) error {
			saved = c
			return nil
		},
	}

	useCase := NewStartConversationUseCase(convRepo, &mockConversationGuard{}, &mockEventDispatcher{}, 30*time.Minute, &mockLogger{})

	result, err := useCase.Execute(context.Background(), StartConversationCommand{TelegramUserID: userID})
	require.NoError(t, err)

	assert.Equal(t, "category", result.Conversation.Step)
	assert.Equal(t, "active", result.Conversation.Status)
	require.NotNil(t, saved)
	assert.Equal(t, userID, saved.TelegramUserID())
}

func TestStartConversationUseCase_Execute_RejectsSecondStart(t *testing.T) {
	userID := int64(111)
	existing := activeConversation(t, userID)
	require.NoError(t, existing.SelectCategory("connectivity"))

	convRepo := &mockConversationRepository{
		FindActiveByUserFunc: func(ctx context.Context, id int64) (*conversation.SupportConversation, error) {
			return existing, nil
		},
		SaveFunc: func(ctx context.Context, c *conversation.SupportConversation) error {
			t.Fatal("no new conversation should be saved")
			return nil
		},
	}

	useCase := NewStartConversationUseCase(convRepo, &mockConversationGuard{}, &mockEventDispatcher{}, 30*time.Minute, &mockLogger{})

	_, err := useCase.Execute(context.Background(), StartConversationCommand{TelegramUserID: userID})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestStartConversationUseCase_Execute_ReplacesStaleConversation(t *testing.T) {
	userID := int64(111)

	now := time.Now().UTC()
	stale, err := conversation.ReconstructSupportConversation(
		7, userID,
		conversation.StepDescription, conversation.StatusActive,
		nil, nil, nil, "", nil,
		now.Add(-45*time.Minute), 1,
		now.Add(-50*time.Minute), now.Add(-45*time.Minute),
	)
	require.NoError(t, err)

	deactivated := false
	var saved *conversation.SupportConversation
	convRepo := &mockConversationRepository{
		FindActiveByUserFunc: func(ctx context.Context, id int64) (*conversation.SupportConversation, error) {
			return stale, nil
		},
		DeactivateUserConversationsFunc: func(ctx context.Context, id int64) (int64, error) {
			deactivated = true
			assert.Equal(t, userID, id)
			return 1, nil
		},
		SaveFunc: func(ctx context.Context, c *conversation.SupportConversation) error {
			saved = c
			return nil
		},
	}

	useCase := NewStartConversationUseCase(convRepo, &mockConversationGuard{}, &mockEventDispatcher{}, 30*time.Minute, &mockLogger{})

	result, err := useCase.Execute(context.Background(), StartConversationCommand{TelegramUserID: userID})
	require.NoError(t, err)

	assert.Equal(t, "category", result.Conversation.Step)
	assert.True(t, deactivated)
	require.NotNil(t, saved)
}

func TestStartConversationUseCase_Execute_GuardContention(t *testing.T) {
	guard := &mockConversationGuard{
		AcquireFunc: func(ctx context.Context, id int64) (bool, error) {
			return false, nil
		},
	}

	useCase := NewStartConversationUseCase(&mockConversationRepository{}, guard, &mockEventDispatcher{}, 30*time.Minute, &mockLogger{})

	_, err := useCase.Execute(context.Background(), StartConversationCommand{TelegramUserID: 111})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestStartConversationUseCase_Execute_ReleasesGuardOnSaveFailure(t *testing.T) {
	released := false
	guard := &mockConversationGuard{
		ReleaseFunc: func(ctx context.Context, id int64) error {
			released = true
			return nil
		},
	}
	convRepo := &mockConversationRepository{
		SaveFunc: func(ctx context.Context, c *conversation.SupportConversation) error {
			return errors.New("database unavailable")
		},
	}

	useCase := NewStartConversationUseCase(convRepo, guard, &mockEventDispatcher{}, 30*time.Minute, &mockLogger{})

	_, err := useCase.Execute(context.Background(), StartConversationCommand{TelegramUserID: 111})
	require.Error(t, err)
	assert.True(t, released)
}

func TestStartConversationUseCase_Execute_RequiresUser(t *testing.T) {
	useCase := NewStartConversationUseCase(&mockConversationRepository{}, &mockConversationGuard{}, &mockEventDispatcher{}, 30*time.Minute, &mockLogger{})

	_, err := useCase.Execute(context.Background(), StartConversationCommand{})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
