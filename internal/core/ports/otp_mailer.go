package ports

import "context"

// OtpEmail holds the template parameters of the pickup-code email.
type OtpEmail struct {
	Recipient string
	Code      string
	PackageID string
	RackLabel string
}

// OtpMailer hands the pickup code to an external templated-mail service.
// Delivery to the customer's inbox is opaque; a nil error only means the
// service accepted the message.
type OtpMailer interface {
	SendOtp(ctx context.Context, email OtpEmail) error
}
