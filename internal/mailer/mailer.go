// Package mailer delivers credential and one-time-code notifications over
// SMTP. Delivery failures are the caller's to report; nothing here retries.
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/gracechapel/pastor-mobile-api/internal/models"
)

// Mailer is the outbound notification channel.
type Mailer interface {
	// SendCredentials delivers a newly provisioned account's email and
	// temporary password to its owner.
	SendCredentials(ctx context.Context, to, firstName, lastName string, role models.Role, tempPassword string) error
	// SendOTP delivers a one-time code with its validity window.
	SendOTP(ctx context.Context, to, code string, validity time.Duration) error
}

type message struct {
	to      string
	subject string
	body    string
}

func credentialsMessage(to, firstName, lastName string, role models.Role, tempPassword string) message {
	roleName := role.DisplayName()
	return message{
		to:      to,
		subject: fmt.Sprintf("Your %s Account Credentials", roleName),
		body: fmt.Sprintf(
			"Hello %s %s,\n\n"+
				"Your %s account has been created.\n\n"+
				"You can sign in using:\n\n"+
				"Email: %s\n"+
				"Password: %s\n"+
				"Role: %s\n\n"+
				"Please keep these credentials secure and change your password after first login.",
			firstName, lastName, roleName, to, tempPassword, roleName),
	}
}

func otpMessage(to, code string, validity time.Duration) message {
	minutes := int(validity.Minutes())
	return message{
		to:      to,
		subject: "Your Verification Code",
		body: fmt.Sprintf(
			"Your verification code is: %s\n\n"+
				"This code will expire in %d minutes.\n\n"+
				"If you didn't request this, please ignore this email.",
			code, minutes),
	}
}
