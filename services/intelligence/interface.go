package intelligence

import (
	"context"

	"tailortalk/models"
)

// IntentClassifier labels an utterance with the user's coarse goal.
type IntentClassifier interface {
	Classify(ctx context.Context, text string) models.Intent
}

// ChatCompleter is the language-model collaborator: one user message in, free
// text out. The classifier treats it as best-effort.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
