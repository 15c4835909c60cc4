package apihandler

import (
	"io"
	"mime"
	"net/http"
	"referral/internal/referral"
	"referral/pkg/domain"
	"referral/pkg/serrors"
	"time"

	"github.com/go-faster/jx"
)

// TimeFormat renders timestamps as UTC ISO-8601 with millisecond precision.
const TimeFormat = "2006-01-02T15:04:05.000Z"

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)

	return err == nil && mediaType == "application/json"
}

// DecodeSubmission reads the submission from r's JSON body.
//
// Bodies that are not declared as JSON, zero-length bodies and JSON arrays
// yield an empty submission. In an object only string values fill a field; for
// repeated keys the last one wins. Anything that is not valid JSON, a scalar
// top-level value or a body over the size limit is an unhandled error.
func DecodeSubmission(r *http.Request) (referral.Submission, error) {
	var sub referral.Submission
	if !isJSON(r.Header.Get("Content-Type")) {
		return sub, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return sub, serrors.Wrap(serrors.ErrUnhandled, err, "could not read request body")
	}
	if len(body) == 0 {
		return sub, nil
	}

	d := jx.DecodeBytes(body)
	switch d.Next() {
	case jx.Object:
		err = d.Obj(func(d *jx.Decoder, key string) error {
			dst := submissionField(&sub, key)
			if dst == nil {
				return d.Skip()
			}
			if d.Next() != jx.String {
				*dst = ""

				return d.Skip()
			}
			v, err := d.Str()
			*dst = v

			return err //nolint: wrapcheck
		})
	case jx.Array:
		err = d.Skip()
	default:
		return referral.Submission{}, serrors.With(serrors.ErrUnhandled, "request body must be a JSON object")
	}
	if err != nil {
		return referral.Submission{}, serrors.Wrap(serrors.ErrUnhandled, err, "could not decode request body")
	}
	if d.Next() != jx.Invalid {
		return referral.Submission{}, serrors.With(serrors.ErrUnhandled, "unexpected data after JSON body")
	}

	return sub, nil
}

func submissionField(sub *referral.Submission, key string) *string {
	switch key {
	case "referrerName":
		return &sub.ReferrerName
	case "referrerEmail":
		return &sub.ReferrerEmail
	case "refereeName":
		return &sub.RefereeName
	case "refereeEmail":
		return &sub.RefereeEmail
	case "course":
		return &sub.Course
	default:
		return nil
	}
}

func encodeTime(e *jx.Encoder, t time.Time) {
	e.Str(t.UTC().Format(TimeFormat))
}

// EncodeSubmitted encodes the 201 body. The referee email is not echoed back.
func EncodeSubmitted(ref *domain.Referral) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("message", func(e *jx.Encoder) { e.Str(MsgSubmitted) })
		e.Field("referral", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("id", func(e *jx.Encoder) { e.Int64(int64(ref.ID)) })
				e.Field("referrerName", func(e *jx.Encoder) { e.Str(ref.ReferrerName) })
				e.Field("refereeName", func(e *jx.Encoder) { e.Str(ref.RefereeName) })
				e.Field("course", func(e *jx.Encoder) { e.Str(ref.Course) })
				e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, ref.CreatedAt) })
			})
		})
	})

	return e.Bytes()
}

func EncodeStats(stats *domain.ReferralStats) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("totalReferrals", func(e *jx.Encoder) { e.Int64(stats.Total) })
		e.Field("recentReferrals", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, r := range stats.Recent {
					e.Obj(func(e *jx.Encoder) {
						e.Field("referrerName", func(e *jx.Encoder) { e.Str(r.ReferrerName) })
						e.Field("course", func(e *jx.Encoder) { e.Str(r.Course) })
						e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, r.CreatedAt) })
					})
				}
			})
		})
	})

	return e.Bytes()
}

func encodeStatus(status string) []byte {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("status", func(e *jx.Encoder) { e.Str(status) })
	})

	return e.Bytes()
}
