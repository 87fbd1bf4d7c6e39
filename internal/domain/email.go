package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EventInvitationEmailData holds data for the availability invitation email.
type EventInvitationEmailData struct {
	Email      string
	Name       string
	EventTitle string
	PollURL    string
}

// EmailService defines the contract for sending domain-level emails.
// Sends are best effort: a failure is reported to the caller, who logs it
// and never fails the triggering operation.
type EmailService interface {
	SendEventInvitation(ctx context.Context, data *EventInvitationEmailData) error
}
