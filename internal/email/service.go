package email

import "context"

// Service sends the system's notification mails.
type Service interface {
	SendPasswordReset(ctx context.Context, to string, resetLink string) error
	SendResultReady(ctx context.Context, to string, patientName string, panel string) error
	SendWelcome(ctx context.Context, to string, name string) error
}
