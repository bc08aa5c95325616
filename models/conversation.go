package models

import "time"

// Intent is the coarse user goal inferred from an utterance.
type Intent string

const (
	IntentBookMeeting       Intent = "book_meeting"
	IntentCheckAvailability Intent = "check_availability"
	IntentUnknown           Intent = "unknown"
)

// ConversationState is the per-turn record threaded through the conversation
// graph. It is created at turn start and discarded once the response has been
// extracted; nothing survives across turns.
type ConversationState struct {
	UserInput string     // cleaned utterance for this turn
	Intent    Intent     // set by the intent classifier
	DateTime  *time.Time // resolved absolute timestamp, if any
	Error     string     // first user-visible failure on this turn
	Response  string     // successful terminal output
}
