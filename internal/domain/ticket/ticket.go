package ticket

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/oncabito/sentinela/internal/domain/shared/events"
	vo "github.com/oncabito/sentinela/internal/domain/ticket/valueobjects"
	"github.com/oncabito/sentinela/internal/shared/biztime"
)

// MinDescriptionLength is the minimum description length in runes, enforced
// before a ticket can exist.
const MinDescriptionLength = 10

// Ticket is the aggregate root of a support request. All mutations pass
// through it; state changes record domain events that the application layer
// pulls and publishes, so notification side effects never live inside the
// aggregate itself.
type Ticket struct {
	id              uint
	protocol        string
	telegramUserID  int64
	category        vo.Category
	game            vo.GameTitle
	timing          vo.ProblemTiming
	description     string
	urgency         vo.UrgencyLevel
	status          vo.TicketStatus
	attachments     []vo.Attachment
	assigneeID      *uint
	hubsoftID       *string
	syncedAt        *time.Time
	resolutionNotes string
	version         int
	createdAt       time.Time
	updatedAt       time.Time
	resolvedAt      *time.Time
	closedAt        *time.Time
	events          []events.DomainEvent
}

// NewTicket creates a ticket in status PENDING. The protocol must already be
// generated; it is assigned exactly once and never mutated afterwards.
func NewTicket(
	protocol string,
	telegramUserID int64,
	category vo.Category,
	game vo.GameTitle,
	timing vo.ProblemTiming,
	description string,
	urgency vo.UrgencyLevel,
	attachments []vo.Attachment,
) (*Ticket, error) {
	if protocol == "" {
		return nil, fmt.Errorf("protocol is required")
	}
	if telegramUserID == 0 {
		return nil, fmt.Errorf("telegram user ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !timing.IsValid() {
		return nil, fmt.Errorf("invalid problem timing")
	}
	if !urgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency level")
	}
	if utf8.RuneCountInString(description) < MinDescriptionLength {
		return nil, fmt.Errorf("%w: minimum %d characters", ErrDescriptionTooShort, MinDescriptionLength)
	}
	if len(attachments) > vo.MaxAttachments {
		return nil, fmt.Errorf("%w: maximum %d", ErrAttachmentLimit, vo.MaxAttachments)
	}

	now := biztime.NowUTC()
	t := &Ticket{
		protocol:       protocol,
		telegramUserID: telegramUserID,
		category:       category,
		game:           game,
		timing:         timing,
		description:    description,
		urgency:        urgency,
		status:         vo.StatusPending,
		attachments:    append([]vo.Attachment{}, attachments...),
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}

	t.recordEvent(NewTicketCreatedEvent(t.protocol, t.telegramUserID, t.category, t.urgency))

	return t, nil
}

// ReconstructTicket rebuilds a ticket from persisted state without recording
// events or re-running creation validation beyond basic integrity checks.
func ReconstructTicket(
	id uint,
	protocol string,
	telegramUserID int64,
	category vo.Category,
	game vo.GameTitle,
	timing vo.ProblemTiming,
	description string,
	urgency vo.UrgencyLevel,
	status vo.TicketStatus,
	attachments []vo.Attachment,
	assigneeID *uint,
	hubsoftID *string,
	syncedAt *time.Time,
	resolutionNotes string,
	version int,
	createdAt, updatedAt time.Time,
	resolvedAt, closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if protocol == "" {
		return nil, fmt.Errorf("protocol is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !urgency.IsValid() {
		return nil, fmt.Errorf("invalid urgency level")
	}
	if attachments == nil {
		attachments = []vo.Attachment{}
	}

	return &Ticket{
		id:              id,
		protocol:        protocol,
		telegramUserID:  telegramUserID,
		category:        category,
		game:            game,
		timing:          timing,
		description:     description,
		urgency:         urgency,
		status:          status,
		attachments:     attachments,
		assigneeID:      assigneeID,
		hubsoftID:       hubsoftID,
		syncedAt:        syncedAt,
		resolutionNotes: resolutionNotes,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		resolvedAt:      resolvedAt,
		closedAt:        closedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Protocol() string {
	return t.protocol
}

func (t *Ticket) TelegramUserID() int64 {
	return t.telegramUserID
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) Game() vo.GameTitle {
	return t.game
}

func (t *Ticket) Timing() vo.ProblemTiming {
	return t.timing
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Urgency() vo.UrgencyLevel {
	return t.urgency
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Attachments() []vo.Attachment {
	attachmentsCopy := make([]vo.Attachment, len(t.attachments))
	copy(attachmentsCopy, t.attachments)
	return attachmentsCopy
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) HubSoftID() *string {
	return t.hubsoftID
}

func (t *Ticket) SyncedAt() *time.Time {
	return t.syncedAt
}

// IsSynced reports whether the ticket already carries an external HubSoft id.
func (t *Ticket) IsSynced() bool {
	return t.hubsoftID != nil
}

func (t *Ticket) ResolutionNotes() string {
	return t.resolutionNotes
}

func (t *Ticket) Version() int {
	return t.version
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AssignToTechnician moves the ticket to IN_PROGRESS and records the
// technician. Only PENDING and OPEN tickets can be assigned.
func (t *Ticket) AssignToTechnician(technicianID uint) error {
	if technicianID == 0 {
		return fmt.Errorf("technician ID cannot be zero")
	}
	if !t.status.CanTransitionTo(vo.StatusInProgress) {
		return fmt.Errorf("%w: cannot assign from %s", ErrInvalidTransition, t.status)
	}

	oldStatus := t.status
	t.status = vo.StatusInProgress
	t.assigneeID = &technicianID
	t.touch()

	t.recordEvent(NewTicketAssignedEvent(t.protocol, t.telegramUserID, technicianID))
	t.recordEvent(NewTicketStatusChangedEvent(t.protocol, t.telegramUserID, oldStatus, t.status))

	return nil
}

// ChangeStatus validates the transition against the lifecycle table. On an
// unlisted edge the aggregate is left unchanged.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.status, newStatus)
	}

	oldStatus := t.status
	t.status = newStatus
	t.touch()

	now := biztime.NowUTC()
	switch {
	case newStatus.IsResolved():
		t.resolvedAt = &now
	case newStatus.IsClosed() || newStatus.IsCancelled():
		t.closedAt = &now
	case newStatus.IsOpen() && oldStatus.IsResolved():
		// Reopened after resolution: the resolution no longer stands.
		t.resolvedAt = nil
	}

	t.recordEvent(NewTicketStatusChangedEvent(t.protocol, t.telegramUserID, oldStatus, newStatus))

	return nil
}

// Cancel moves the ticket to CANCELLED. The record is retained for audit.
func (t *Ticket) Cancel() error {
	return t.ChangeStatus(vo.StatusCancelled)
}

// AddAttachment appends an attachment, rejecting the operation outright when
// the cap is already reached. No partial mutation happens on failure.
func (t *Ticket) AddAttachment(att vo.Attachment) error {
	if len(t.attachments) >= vo.MaxAttachments {
		return fmt.Errorf("%w: maximum %d", ErrAttachmentLimit, vo.MaxAttachments)
	}

	t.attachments = append(t.attachments, att)
	t.touch()

	return nil
}

// ElevateUrgency raises urgency one level. At HIGH it is a no-op and records
// no event.
func (t *Ticket) ElevateUrgency() {
	if t.urgency.IsHigh() {
		return
	}

	oldUrgency := t.urgency
	t.urgency = t.urgency.Elevate()
	t.touch()

	t.recordEvent(NewTicketUrgencyElevatedEvent(t.protocol, t.telegramUserID, oldUrgency, t.urgency))
}

// SyncWithHubSoft records the external service-order id. Calling it again
// with the same id is a no-op; a different id is rejected once synced.
func (t *Ticket) SyncWithHubSoft(externalID string) error {
	if externalID == "" {
		return fmt.Errorf("hubsoft ID cannot be empty")
	}

	if t.hubsoftID != nil {
		if *t.hubsoftID == externalID {
			return nil
		}
		return fmt.Errorf("%w: have %s, got %s", ErrAlreadySynced, *t.hubsoftID, externalID)
	}

	now := biztime.NowUTC()
	t.hubsoftID = &externalID
	t.syncedAt = &now
	t.touch()

	t.recordEvent(NewTicketSyncedEvent(t.protocol, t.telegramUserID, externalID))

	return nil
}

// CloseWithResolution stores the resolution notes and closes the ticket.
// Valid only from RESOLVED.
func (t *Ticket) CloseWithResolution(notes string) error {
	if notes == "" {
		return fmt.Errorf("resolution notes are required")
	}
	if !t.status.IsResolved() {
		return fmt.Errorf("%w: close requires resolved, ticket is %s", ErrInvalidTransition, t.status)
	}

	oldStatus := t.status
	t.status = vo.StatusClosed
	t.resolutionNotes = notes
	now := biztime.NowUTC()
	t.closedAt = &now
	t.touch()

	t.recordEvent(NewTicketStatusChangedEvent(t.protocol, t.telegramUserID, oldStatus, t.status))
	t.recordEvent(NewTicketClosedEvent(t.protocol, t.telegramUserID, notes))

	return nil
}

func (t *Ticket) touch() {
	t.updatedAt = biztime.NowUTC()
	t.version++
}

func (t *Ticket) recordEvent(event events.DomainEvent) {
	t.events = append(t.events, event)
}

// PullEvents returns and clears the recorded domain events.
func (t *Ticket) PullEvents() []events.DomainEvent {
	pulled := t.events
	t.events = nil
	return pulled
}
