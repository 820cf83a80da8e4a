package conversation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
)

const testUserID int64 = 987654321

func newActiveConversation(t *testing.T) *SupportConversation {
	t.Helper()

	conv, err := NewSupportConversation(testUserID)
	require.NoError(t, err)
	return conv
}

// walkTo drives the conversation to the given step with valid inputs.
func walkTo(t *testing.T, conv *SupportConversation, target Step) {
	t.Helper()

	steps := []func() error{
		func() error { return conv.SelectCategory("connectivity") },
		func() error { return conv.SelectGame("valorant", "") },
		func() error { return conv.SelectTiming("today") },
		func() error { return conv.SetDescription("Lag constante desde ontem à noite") },
		func() error { return conv.ProceedToConfirmation() },
	}

	for _, step := range steps {
		if conv.Step() == target {
			return
		}
		require.NoError(t, step())
	}
	require.Equal(t, target, conv.Step())
}

func testAttachment(t *testing.T, uniqueID string) vo.Attachment {
	t.Helper()

	att, err := vo.NewAttachment("file-"+uniqueID, uniqueID, "speedtest.png", "image/png", 1024)
	require.NoError(t, err)
	return att
}

func TestNewSupportConversation(t *testing.T) {
	conv := newActiveConversation(t)

	assert.Equal(t, testUserID, conv.TelegramUserID())
	assert.Equal(t, StepCategory, conv.Step())
	assert.Equal(t, StatusActive, conv.Status())
	assert.True(t, conv.IsActive())

	pulled := conv.PullEvents()
	require.Len(t, pulled, 1)
	assert.Equal(t, EventConversationStarted, pulled[0].GetEventType())

	_, err := NewSupportConversation(0)
	assert.Error(t, err)
}

func TestConversationHappyPath(t *testing.T) {
	conv := newActiveConversation(t)

	require.NoError(t, conv.SelectCategory("connectivity"))
	assert.Equal(t, StepGame, conv.Step())

	require.NoError(t, conv.SelectGame("other", "Rocket League"))
	assert.Equal(t, StepTiming, conv.Step())

	require.NoError(t, conv.SelectTiming("now"))
	assert.Equal(t, StepDescription, conv.Step())

	require.NoError(t, conv.SetDescription("Ping acima de 300ms em todas as partidas"))
	assert.Equal(t, StepAttachments, conv.Step())

	require.NoError(t, conv.AddAttachment(testAttachment(t, "u1")))
	assert.Equal(t, StepAttachments, conv.Step(), "attachments do not advance the step")

	require.NoError(t, conv.ProceedToConfirmation())
	assert.Equal(t, StepConfirmation, conv.Step())

	require.NoError(t, conv.Complete())
	assert.Equal(t, StatusCompleted, conv.Status())
	assert.False(t, conv.IsActive())

	require.NotNil(t, conv.Category())
	assert.Equal(t, vo.CategoryConnectivity, *conv.Category())
	require.NotNil(t, conv.Game())
	assert.Equal(t, "Rocket League", conv.Game().CustomName())
	require.NotNil(t, conv.Timing())
	assert.Equal(t, vo.TimingNow, *conv.Timing())
	assert.Len(t, conv.Attachments(), 1)
}

func TestConversationRejectsOutOfOrderInput(t *testing.T) {
	conv := newActiveConversation(t)

	// Still at CATEGORY: every later-step input is rejected.
	assert.ErrorIs(t, conv.SelectGame("valorant", ""), ErrUnexpectedStep)
	assert.ErrorIs(t, conv.SelectTiming("now"), ErrUnexpectedStep)
	assert.ErrorIs(t, conv.SetDescription("descrição bem detalhada"), ErrUnexpectedStep)
	assert.ErrorIs(t, conv.AddAttachment(testAttachment(t, "u1")), ErrUnexpectedStep)
	assert.ErrorIs(t, conv.ProceedToConfirmation(), ErrUnexpectedStep)
	assert.ErrorIs(t, conv.Complete(), ErrUnexpectedStep)

	require.NoError(t, conv.SelectCategory("performance"))
	assert.ErrorIs(t, conv.SelectCategory("other"), ErrUnexpectedStep, "category cannot be re-selected")
}

func TestConversationRejectsUnknownKeys(t *testing.T) {
	conv := newActiveConversation(t)

	assert.ErrorIs(t, conv.SelectCategory("plumbing"), ErrUnknownCategory)
	require.NoError(t, conv.SelectCategory("equipment"))

	assert.ErrorIs(t, conv.SelectGame("pong", ""), ErrUnknownGame)
	assert.ErrorIs(t, conv.SelectGame("other", "  "), ErrUnknownGame)
	require.NoError(t, conv.SelectGame("cs2", ""))

	assert.ErrorIs(t, conv.SelectTiming("someday"), ErrUnknownTiming)
}

func TestSetDescriptionBoundary(t *testing.T) {
	conv := newActiveConversation(t)
	walkTo(t, conv, StepDescription)

	// Nine runes rejected, ten accepted.
	assert.ErrorIs(t, conv.SetDescription("conexão x"), ErrDescriptionTooShort)
	assert.Equal(t, StepDescription, conv.Step())

	require.NoError(t, conv.SetDescription("conexão xy"))
	assert.Equal(t, StepAttachments, conv.Step())
}

func TestAddAttachmentCap(t *testing.T) {
	conv := newActiveConversation(t)
	walkTo(t, conv, StepAttachments)

	for _, uid := range []string{"u1", "u2", "u3"} {
		require.NoError(t, conv.AddAttachment(testAttachment(t, uid)))
	}

	err := conv.AddAttachment(testAttachment(t, "u4"))
	assert.ErrorIs(t, err, ErrAttachmentLimit)
	assert.Len(t, conv.Attachments(), 3)

	// The cap does not block proceeding.
	require.NoError(t, conv.ProceedToConfirmation())
}

func TestCompleteRequiresFullForm(t *testing.T) {
	conv, err := ReconstructSupportConversation(
		1, testUserID, StepConfirmation, StatusActive,
		nil, nil, nil, "", nil,
		time.Now().UTC(), 1, time.Now().UTC(), time.Now().UTC(),
	)
	require.NoError(t, err)

	assert.ErrorIs(t, conv.Complete(), ErrFormIncomplete)
	assert.Equal(t, StatusActive, conv.Status())
}

func TestCancelClearsFormData(t *testing.T) {
	conv := newActiveConversation(t)
	walkTo(t, conv, StepAttachments)
	require.NoError(t, conv.AddAttachment(testAttachment(t, "u1")))
	conv.PullEvents()

	require.NoError(t, conv.Cancel())

	assert.Equal(t, StatusCancelled, conv.Status())
	assert.Nil(t, conv.Category())
	assert.Nil(t, conv.Game())
	assert.Nil(t, conv.Timing())
	assert.Empty(t, conv.Description())
	assert.Empty(t, conv.Attachments())

	pulled := conv.PullEvents()
	require.Len(t, pulled, 1)
	assert.Equal(t, EventConversationCancelled, pulled[0].GetEventType())

	// Cancelled conversations accept nothing further.
	assert.ErrorIs(t, conv.Cancel(), ErrConversationInactive)
	assert.ErrorIs(t, conv.SelectCategory("other"), ErrConversationInactive)
}

func TestExpire(t *testing.T) {
	conv := newActiveConversation(t)
	conv.PullEvents()

	require.NoError(t, conv.Expire())
	assert.Equal(t, StatusExpired, conv.Status())

	pulled := conv.PullEvents()
	require.Len(t, pulled, 1)
	assert.Equal(t, EventConversationExpired, pulled[0].GetEventType())

	assert.ErrorIs(t, conv.Expire(), ErrConversationInactive)
}

func TestIsExpired(t *testing.T) {
	stale := time.Now().UTC().Add(-45 * time.Minute)
	conv, err := ReconstructSupportConversation(
		1, testUserID, StepCategory, StatusActive,
		nil, nil, nil, "", nil,
		stale, 1, stale, stale,
	)
	require.NoError(t, err)

	assert.True(t, conv.IsExpired(30*time.Minute))
	assert.False(t, conv.IsExpired(time.Hour))

	require.NoError(t, conv.Expire())
	assert.False(t, conv.IsExpired(30*time.Minute), "only active conversations expire")
}

func TestTouchRefreshesActivityWindow(t *testing.T) {
	stale := time.Now().UTC().Add(-45 * time.Minute)
	conv, err := ReconstructSupportConversation(
		1, testUserID, StepCategory, StatusActive,
		nil, nil, nil, "", nil,
		stale, 1, stale, stale,
	)
	require.NoError(t, err)
	require.True(t, conv.IsExpired(30*time.Minute))

	require.NoError(t, conv.SelectCategory("connectivity"))

	assert.False(t, conv.IsExpired(30*time.Minute), "accepted input resets the expiry window")
	assert.Equal(t, 2, conv.Version())
}
