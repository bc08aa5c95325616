package agent

import (
	"context"

	"tailortalk/calendar"
	"tailortalk/services/booking"
	"tailortalk/services/intelligence"
	"tailortalk/services/timephrase"
)

// AgentService runs one full conversation turn: classify the utterance,
// extract a time, validate it against the calendar and either book or
// suggest slots.
type AgentService interface {
	Run(ctx context.Context, userInput string) string
}

// DefaultAgentService wires the conversation graph's collaborators together.
// It is constructed once per process and shared across requests; all mutable
// state lives in the per-turn ConversationState.
type DefaultAgentService struct {
	Classifier intelligence.IntentClassifier
	Extractor  *timephrase.Extractor
	Scheduler  booking.SchedulerService
	Calendar   calendar.Client
}
