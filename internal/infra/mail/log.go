package mail

import (
	"context"
	"log/slog"
)

type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, to, subject, body string) error {
	m.logger.Info("mail (log transport)",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.Int("body_len", len(body)))
	return nil
}
