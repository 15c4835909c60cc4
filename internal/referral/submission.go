package referral

import (
	"referral/pkg/domain"
	"referral/pkg/serrors"
	"regexp"
)

const (
	MsgAllFieldsRequired  = "All fields are required"
	MsgInvalidEmailFormat = "Invalid email format"
)

// emailPattern accepts local@domain.tld where no part holds whitespace or '@'.
// The whitespace set is the ECMAScript one, which is wider than RE2's \s.
var emailPattern = regexp.MustCompile( //nolint: gochecknoglobals
	`^[^@\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]+` +
		`@[^@\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]+` +
		`\.[^@\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]+$`)

// Submission is a referral as received from a client, before validation.
// A field the client omitted, sent as null or sent as a non-string is empty.
type Submission struct {
	ReferrerName  string
	ReferrerEmail string
	RefereeName   string
	RefereeEmail  string
	Course        string
}

// Referral converts a validated submission into a referral ready to be stored.
func (s Submission) Referral() domain.Referral {
	return domain.Referral{
		ReferrerName:  s.ReferrerName,
		ReferrerEmail: s.ReferrerEmail,
		RefereeName:   s.RefereeName,
		RefereeEmail:  s.RefereeEmail,
		Course:        s.Course,
	}
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Validate checks presence of every field first, then the shape of both
// emails. Whitespace-only values count as present.
func Validate(s Submission) error {
	if s.ReferrerName == "" || s.ReferrerEmail == "" || s.RefereeName == "" ||
		s.RefereeEmail == "" || s.Course == "" {
		return serrors.With(serrors.ErrMissingField, MsgAllFieldsRequired)
	}

	if !IsEmail(s.ReferrerEmail) || !IsEmail(s.RefereeEmail) {
		return serrors.With(serrors.ErrInvalidEmailFormat, MsgInvalidEmailFormat)
	}

	return nil
}
