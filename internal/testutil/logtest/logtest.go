// Package logtest builds loggers that write through testing.T, keeping the
// testing package out of the production logger.
package logtest

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"scholarhub-backend/internal/infrastructure/logger"
)

func New(t testing.TB) logger.Logger {
	return logger.FromZap(zaptest.NewLogger(t))
}
