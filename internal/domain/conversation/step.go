package conversation

import "fmt"

// Step is one stage of the six-step ticket-creation form. The sequence is
// strictly forward; the only ways out of order are cancel and expiry.
type Step string

const (
	StepCategory     Step = "category"
	StepGame         Step = "game"
	StepTiming       Step = "timing"
	StepDescription  Step = "description"
	StepAttachments  Step = "attachments"
	StepConfirmation Step = "confirmation"
)

var validSteps = map[Step]bool{
	StepCategory:     true,
	StepGame:         true,
	StepTiming:       true,
	StepDescription:  true,
	StepAttachments:  true,
	StepConfirmation: true,
}

var nextStep = map[Step]Step{
	StepCategory:    StepGame,
	StepGame:        StepTiming,
	StepTiming:      StepDescription,
	StepDescription: StepAttachments,
	StepAttachments: StepConfirmation,
}

func (s Step) String() string {
	return string(s)
}

func (s Step) IsValid() bool {
	return validSteps[s]
}

// Next returns the step that follows, or the step itself at CONFIRMATION.
func (s Step) Next() Step {
	if n, ok := nextStep[s]; ok {
		return n
	}
	return s
}

func NewStep(s string) (Step, error) {
	step := Step(s)
	if !step.IsValid() {
		return "", fmt.Errorf("invalid conversation step: %s", s)
	}
	return step, nil
}

// Status is the lifecycle state of a conversation. ACTIVE conversations are
// the only ones accepting input; the rest are terminal.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

var validStatuses = map[Status]bool{
	StatusActive:    true,
	StatusCompleted: true,
	StatusCancelled: true,
	StatusExpired:   true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsActive() bool {
	return s == StatusActive
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid conversation status: %s", s)
	}
	return status, nil
}
