// File: tailortalk/services/agent/graph.go
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tailortalk/models"
	"tailortalk/services/booking"
	"tailortalk/services/timephrase"
	"tailortalk/utils"

	"go.uber.org/zap"
)

// noOutputFallback is the terminal reply when a turn produced neither a
// response nor an error (e.g. an unknown intent).
const noOutputFallback = "❌ No output generated."

// nodeFunc is one step of the conversation graph. Nodes read and write the
// shared per-turn state; a node that writes Error stops the path.
type nodeFunc func(ctx context.Context, st *models.ConversationState)

// Run executes one turn of the conversation graph. The book path runs
// parseTime, checkAvailability and book in order; the availability path runs
// respondWithSlots; an unknown intent goes straight to the terminal node.
func (a *DefaultAgentService) Run(ctx context.Context, userInput string) string {
	logger := utils.GetLogger()

	st := &models.ConversationState{UserInput: timephrase.CleanInput(userInput)}
	logger.Info("starting conversation turn", zap.String("input", st.UserInput))

	a.classifyIntent(ctx, st)
	switch st.Intent {
	case models.IntentBookMeeting:
		a.runPath(ctx, st, a.parseTime, a.checkAvailability, a.book)
	case models.IntentCheckAvailability:
		a.runPath(ctx, st, a.respondWithSlots)
	default:
		// Unknown intent goes straight to the terminal node.
	}
	return a.respond(st)
}

// runPath executes nodes in order, short-circuiting once an error has been
// recorded so a later node can never overwrite it.
func (a *DefaultAgentService) runPath(ctx context.Context, st *models.ConversationState, nodes ...nodeFunc) {
	for _, node := range nodes {
		if st.Error != "" {
			return
		}
		node(ctx, st)
	}
}

func (a *DefaultAgentService) classifyIntent(ctx context.Context, st *models.ConversationState) {
	st.Intent = a.Classifier.Classify(ctx, st.UserInput)
	utils.GetLogger().Debug("classified intent", zap.String("intent", string(st.Intent)))
}

func (a *DefaultAgentService) parseTime(_ context.Context, st *models.ConversationState) {
	dt, err := a.Extractor.Extract(st.UserInput)
	if err != nil {
		phrase := st.UserInput
		var resolveErr *timephrase.ResolveError
		if errors.As(err, &resolveErr) {
			phrase = resolveErr.Phrase
		}
		st.Error = fmt.Sprintf("❌ I couldn't understand the date/time from: '%s'", phrase)
		return
	}
	st.DateTime = &dt
	utils.GetLogger().Debug("parsed datetime", zap.Time("datetime", dt))
}

func (a *DefaultAgentService) checkAvailability(ctx context.Context, st *models.ConversationState) {
	if st.DateTime == nil {
		st.Error = "❌ No valid datetime to check availability."
		return
	}

	events, err := a.Calendar.ListUpcomingEvents(ctx)
	if err != nil {
		st.Error = "❌ Couldn't fetch calendar availability: " + err.Error()
		return
	}
	if err := a.Scheduler.CheckAvailability(*st.DateTime, events); err != nil {
		st.Error = "⚠️ You're already booked at that time."
	}
}

func (a *DefaultAgentService) book(ctx context.Context, st *models.ConversationState) {
	if st.DateTime == nil {
		st.Error = "❌ Cannot book meeting. No valid time provided."
		return
	}

	confirmation, err := a.Scheduler.Book(ctx, *st.DateTime)
	if err != nil {
		st.Error = "❌ Failed to book meeting: " + err.Error()
		return
	}
	st.Response = confirmation
}

func (a *DefaultAgentService) respondWithSlots(ctx context.Context, st *models.ConversationState) {
	utils.GetLogger().Debug("fetching available times")

	events, err := a.Calendar.ListUpcomingEvents(ctx)
	if err != nil {
		st.Error = "❌ Couldn't fetch calendar availability: " + err.Error()
		return
	}

	weekday := booking.WeekdayFilter(st.UserInput)
	suggestions := a.Scheduler.SuggestSlots(events, weekday)
	if len(suggestions) == 0 {
		st.Response = "⚠️ No free slots found for your request."
		return
	}
	st.Response = "🗓️ Here are some free times: " + strings.Join(suggestions, ", ")
}

// respond is the terminal node: a successful response wins, then the first
// recorded error, then the generic fallback.
func (a *DefaultAgentService) respond(st *models.ConversationState) string {
	utils.GetLogger().Debug("final conversation state",
		zap.String("intent", string(st.Intent)),
		zap.String("response", st.Response),
		zap.String("error", st.Error))

	if st.Response != "" {
		return st.Response
	}
	if st.Error != "" {
		return st.Error
	}
	return noOutputFallback
}
