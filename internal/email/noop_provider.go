package email

import "bidfield/internal/logger"

// NoopProvider используется в dev/тестах или когда SMTP не настроен:
// письмо логируется вместо отправки.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(msg *Message) error {
	logger.Info("email skipped (smtp disabled)", "to", msg.To, "subject", msg.Subject)
	return nil
}
