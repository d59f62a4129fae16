package commands

import "context"

// ResendOtpCommandHandler emails the pickup code again.
type ResendOtpCommandHandler struct {
	sessions SessionRegistry
}

func NewResendOtpCommandHandler(sessions SessionRegistry) ResendOtpCommandHandler {
	return ResendOtpCommandHandler{sessions: sessions}
}

// Handle fetches the OTP record when none is cached and sends the email.
func (h ResendOtpCommandHandler) Handle(ctx context.Context, command ResendOtpCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	session, err := h.sessions.Get(command.SessionID())
	if err != nil {
		return err
	}
	return session.ResendOtp(ctx)
}
