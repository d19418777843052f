package mail

import (
	"context"
	"fmt"
)

// VerificationSender builds and sends account verification emails. The
// verification link embeds the user's one-time token under the public
// verify endpoint.
type VerificationSender struct {
	mailer  Mailer
	baseURL string
}

// NewVerificationSender creates a VerificationSender. baseURL is the
// externally reachable address of this service, without a trailing slash.
func NewVerificationSender(mailer Mailer, baseURL string) *VerificationSender {
	return &VerificationSender{
		mailer:  mailer,
		baseURL: baseURL,
	}
}

// Send emails the verification link for the given token to the address.
// The same message is used for first-time and resent verifications.
func (s *VerificationSender) Send(ctx context.Context, email, token string) error {
	msg := Message{
		To:      email,
		Subject: "Verify email",
		HTML: fmt.Sprintf(
			`<a target="_blank" href="%s/api/auth/verify/%s">Click verify email</a>`,
			s.baseURL, token),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	return nil
}
