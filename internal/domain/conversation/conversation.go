package conversation

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/oncabito/sentinela/internal/domain/shared/events"
	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
	"github.com/oncabito/sentinela/internal/shared/biztime"
)

// MinDescriptionLength is the minimum description length in runes accepted at
// the DESCRIPTION step. The same floor is enforced again at ticket creation.
const MinDescriptionLength = 10

// SupportConversation is the per-user form state of an in-progress ticket
// request. At most one active conversation exists per user; the repository
// and the start guard enforce that invariant together.
type SupportConversation struct {
	id             uint
	telegramUserID int64
	step           Step
	status         Status
	category       *vo.Category
	game           *vo.GameTitle
	timing         *vo.ProblemTiming
	description    string
	attachments    []vo.Attachment
	lastActivityAt time.Time
	version        int
	createdAt      time.Time
	updatedAt      time.Time
	events         []events.DomainEvent
}

// NewSupportConversation starts a conversation at the CATEGORY step.
func NewSupportConversation(telegramUserID int64) (*SupportConversation, error) {
	if telegramUserID == 0 {
		return nil, fmt.Errorf("telegram user ID is required")
	}

	now := biztime.NowUTC()
	c := &SupportConversation{
		telegramUserID: telegramUserID,
		step:           StepCategory,
		status:         StatusActive,
		lastActivityAt: now,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}

	c.recordEvent(NewConversationStartedEvent(telegramUserID))

	return c, nil
}

// ReconstructSupportConversation rebuilds a conversation from persisted state.
func ReconstructSupportConversation(
	id uint,
	telegramUserID int64,
	step Step,
	status Status,
	category *vo.Category,
	game *vo.GameTitle,
	timing *vo.ProblemTiming,
	description string,
	attachments []vo.Attachment,
	lastActivityAt time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*SupportConversation, error) {
	if id == 0 {
		return nil, fmt.Errorf("conversation ID cannot be zero")
	}
	if telegramUserID == 0 {
		return nil, fmt.Errorf("telegram user ID is required")
	}
	if !step.IsValid() {
		return nil, fmt.Errorf("invalid step: %s", step)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if attachments == nil {
		attachments = []vo.Attachment{}
	}

	return &SupportConversation{
		id:             id,
		telegramUserID: telegramUserID,
		step:           step,
		status:         status,
		category:       category,
		game:           game,
		timing:         timing,
		description:    description,
		attachments:    attachments,
		lastActivityAt: lastActivityAt,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (c *SupportConversation) ID() uint {
	return c.id
}

func (c *SupportConversation) TelegramUserID() int64 {
	return c.telegramUserID
}

func (c *SupportConversation) Step() Step {
	return c.step
}

func (c *SupportConversation) Status() Status {
	return c.status
}

func (c *SupportConversation) IsActive() bool {
	return c.status.IsActive()
}

func (c *SupportConversation) Category() *vo.Category {
	return c.category
}

func (c *SupportConversation) Game() *vo.GameTitle {
	return c.game
}

func (c *SupportConversation) Timing() *vo.ProblemTiming {
	return c.timing
}

func (c *SupportConversation) Description() string {
	return c.description
}

func (c *SupportConversation) Attachments() []vo.Attachment {
	attachmentsCopy := make([]vo.Attachment, len(c.attachments))
	copy(attachmentsCopy, c.attachments)
	return attachmentsCopy
}

func (c *SupportConversation) LastActivityAt() time.Time {
	return c.lastActivityAt
}

func (c *SupportConversation) Version() int {
	return c.version
}

func (c *SupportConversation) CreatedAt() time.Time {
	return c.createdAt
}

func (c *SupportConversation) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *SupportConversation) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("conversation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("conversation ID cannot be zero")
	}
	c.id = id
	return nil
}

// SelectCategory accepts a category key at the CATEGORY step and advances to
// GAME.
func (c *SupportConversation) SelectCategory(key string) error {
	if err := c.requireStep(StepCategory); err != nil {
		return err
	}

	category, err := vo.NewCategory(key)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownCategory, key)
	}

	c.category = &category
	c.advance()

	return nil
}

// SelectGame accepts a game key at the GAME step and advances to TIMING. The
// "other" variant requires a non-empty custom name.
func (c *SupportConversation) SelectGame(key string, customName string) error {
	if err := c.requireStep(StepGame); err != nil {
		return err
	}

	gameKey := vo.GameKey(key)
	if !gameKey.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownGame, key)
	}

	game, err := vo.NewGameTitle(gameKey, customName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownGame, err)
	}

	c.game = &game
	c.advance()

	return nil
}

// SelectTiming accepts a timing key at the TIMING step and advances to
// DESCRIPTION.
func (c *SupportConversation) SelectTiming(key string) error {
	if err := c.requireStep(StepTiming); err != nil {
		return err
	}

	timing, err := vo.NewProblemTiming(key)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownTiming, key)
	}

	c.timing = &timing
	c.advance()

	return nil
}

// SetDescription accepts the free-text description at the DESCRIPTION step
// and advances to ATTACHMENTS. Exactly MinDescriptionLength runes is accepted.
func (c *SupportConversation) SetDescription(text string) error {
	if err := c.requireStep(StepDescription); err != nil {
		return err
	}

	if utf8.RuneCountInString(text) < MinDescriptionLength {
		return fmt.Errorf("%w: minimum %d characters", ErrDescriptionTooShort, MinDescriptionLength)
	}

	c.description = text
	c.advance()

	return nil
}

// AddAttachment appends an attachment at the ATTACHMENTS step. It does not
// advance; zero or more attachments are accepted before an explicit proceed.
func (c *SupportConversation) AddAttachment(att vo.Attachment) error {
	if err := c.requireStep(StepAttachments); err != nil {
		return err
	}

	if len(c.attachments) >= vo.MaxAttachments {
		return fmt.Errorf("%w: maximum %d", ErrAttachmentLimit, vo.MaxAttachments)
	}

	c.attachments = append(c.attachments, att)
	c.touch()

	return nil
}

// ProceedToConfirmation is the explicit advance out of the ATTACHMENTS step.
func (c *SupportConversation) ProceedToConfirmation() error {
	if err := c.requireStep(StepAttachments); err != nil {
		return err
	}

	c.advance()

	return nil
}

// Complete finishes the conversation at the CONFIRMATION step. The caller is
// responsible for assembling the ticket from the accumulated form data.
func (c *SupportConversation) Complete() error {
	if err := c.requireStep(StepConfirmation); err != nil {
		return err
	}
	if c.category == nil || c.game == nil || c.timing == nil || c.description == "" {
		return ErrFormIncomplete
	}

	c.status = StatusCompleted
	c.touch()

	c.recordEvent(NewConversationCompletedEvent(c.telegramUserID))

	return nil
}

// Cancel deactivates the conversation from any non-terminal step and discards
// the accumulated form data.
func (c *SupportConversation) Cancel() error {
	if !c.status.IsActive() {
		return fmt.Errorf("%w: status is %s", ErrConversationInactive, c.status)
	}

	c.status = StatusCancelled
	c.category = nil
	c.game = nil
	c.timing = nil
	c.description = ""
	c.attachments = nil
	c.touch()

	c.recordEvent(NewConversationCancelledEvent(c.telegramUserID))

	return nil
}

// Expire deactivates a conversation whose inactivity window has elapsed. It
// shares the cancel guard so the sweep and a racing user action cannot both
// win.
func (c *SupportConversation) Expire() error {
	if !c.status.IsActive() {
		return fmt.Errorf("%w: status is %s", ErrConversationInactive, c.status)
	}

	c.status = StatusExpired
	c.touch()

	c.recordEvent(NewConversationExpiredEvent(c.telegramUserID))

	return nil
}

// IsExpired reports whether the conversation has been inactive longer than
// the given timeout.
func (c *SupportConversation) IsExpired(timeout time.Duration) bool {
	return c.status.IsActive() && biztime.NowUTC().Sub(c.lastActivityAt) >= timeout
}

func (c *SupportConversation) requireStep(expected Step) error {
	if !c.status.IsActive() {
		return fmt.Errorf("%w: status is %s", ErrConversationInactive, c.status)
	}
	if c.step != expected {
		return fmt.Errorf("%w: expected %s, at %s", ErrUnexpectedStep, expected, c.step)
	}
	return nil
}

func (c *SupportConversation) advance() {
	c.step = c.step.Next()
	c.touch()
}

// touch refreshes the activity timestamp; every accepted input resets the
// expiry window.
func (c *SupportConversation) touch() {
	now := biztime.NowUTC()
	c.lastActivityAt = now
	c.updatedAt = now
	c.version++
}

func (c *SupportConversation) recordEvent(event events.DomainEvent) {
	c.events = append(c.events, event)
}

// PullEvents returns and clears the recorded domain events.
func (c *SupportConversation) PullEvents() []events.DomainEvent {
	pulled := c.events
	c.events = nil
	return pulled
}
