package application

import (
	"context"

	"scholarhub-backend/internal/infrastructure/logger"
)

// Notifier is the status-change dispatch contract. Delivery (email/SMS) is a
// collaborator; submission only fires and forgets.
type Notifier interface {
	ApplicationSubmitted(ctx context.Context, applicationID, studentID, scholarshipID string)
}

// LogNotifier records the event instead of delivering anything.
type LogNotifier struct {
	Log logger.Logger
}

func (n *LogNotifier) ApplicationSubmitted(_ context.Context, applicationID, studentID, scholarshipID string) {
	n.Log.Info("application submitted notification", map[string]interface{}{
		"applicationId": applicationID,
		"studentId":     studentID,
		"scholarshipId": scholarshipID,
	})
}
