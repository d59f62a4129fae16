package mission

import (
	"strings"

	"missionctl/internal/core/domain/model/facility"
	"missionctl/internal/pkg/errs"
)

// OtpRecord is the pickup code the backend generated on delivery. It is
// fetched, never generated on the client. Rack is the rack the backend
// actually granted, which is what the customer is told.
type OtpRecord struct {
	PackageID string
	Recipient string
	Code      string
	Rack      facility.RackKey
}

// NewOtpRecord validates the fields the email needs. An empty rack is allowed
// and rendered as "Not specified".
func NewOtpRecord(packageID string, recipient string, code string, rack facility.RackKey) (OtpRecord, error) {
	rec := OtpRecord{
		PackageID: strings.TrimSpace(packageID),
		Recipient: strings.TrimSpace(recipient),
		Code:      strings.TrimSpace(code),
		Rack:      rack,
	}
	switch {
	case rec.PackageID == "":
		return OtpRecord{}, errs.NewValueIsRequiredError("package_id")
	case rec.Recipient == "":
		return OtpRecord{}, errs.NewValueIsRequiredError("mail_id")
	case rec.Code == "":
		return OtpRecord{}, errs.NewValueIsRequiredError("otp")
	}
	return rec, nil
}

// RackLabel is the customer-facing rack location, e.g. "Rack 02".
func (r OtpRecord) RackLabel() string {
	return r.Rack.Label()
}
