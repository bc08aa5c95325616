// File: tailortalk/services/intelligence/classifier.go
package intelligence

import (
	"context"
	"strings"

	"tailortalk/models"
	"tailortalk/utils"

	"go.uber.org/zap"
)

// classifierInstruction constrains the model to the closed label set.
const classifierInstruction = "Classify the user's intent as one of: " +
	"'book_meeting', 'check_availability', or 'unknown'. " +
	"Only respond with one of those options."

// DefaultIntentClassifier asks the language model first and falls back to
// deterministic keyword rules when the model call fails. With no model wired
// in it is purely rule-based.
type DefaultIntentClassifier struct {
	Model ChatCompleter
}

func (c *DefaultIntentClassifier) Classify(ctx context.Context, text string) models.Intent {
	logger := utils.GetLogger()
	lower := strings.ToLower(text)
	logger.Debug("classifying intent", zap.String("input", lower))

	if c.Model != nil {
		reply, err := c.Model.Complete(ctx, lower)
		if err == nil {
			intent := normalizeIntent(reply)
			logger.Debug("model classified intent",
				zap.String("reply", reply), zap.String("intent", string(intent)))
			return intent
		}
		logger.Warn("model classification failed, using keyword fallback", zap.Error(err))
	}

	intent := keywordIntent(lower)
	logger.Debug("keyword fallback classified intent", zap.String("intent", string(intent)))
	return intent
}

// normalizeIntent validates the model's free-text reply against the closed
// intent set. Anything else, including replies with extra commentary, maps to
// unknown rather than being trusted as a control-flow discriminant.
func normalizeIntent(reply string) models.Intent {
	cleaned := strings.ToLower(strings.Trim(strings.TrimSpace(reply), "'\"“”.`"))
	switch models.Intent(cleaned) {
	case models.IntentBookMeeting, models.IntentCheckAvailability, models.IntentUnknown:
		return models.Intent(cleaned)
	default:
		return models.IntentUnknown
	}
}

// keywordIntent is the deterministic fallback. Availability cues win over
// booking cues so "book me when I'm free" asks for availability first.
func keywordIntent(lower string) models.Intent {
	switch {
	case strings.Contains(lower, "free") || strings.Contains(lower, "available"):
		return models.IntentCheckAvailability
	case strings.Contains(lower, "book") || strings.Contains(lower, "schedule"):
		return models.IntentBookMeeting
	default:
		return models.IntentUnknown
	}
}
