package utils

import "go.uber.org/zap"

// EmailSender delivers account emails. Production would hand this to a
// real provider; the stock implementation only logs the message.
type EmailSender interface {
	Send(to, subject, body string) error
}

type LogEmailSender struct {
	Log *zap.Logger
}

func NewLogEmailSender(log *zap.Logger) *LogEmailSender {
	return &LogEmailSender{Log: log}
}

func (s *LogEmailSender) Send(to, subject, body string) error {
	s.Log.Info("sending email",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
