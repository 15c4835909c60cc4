package serrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"referral/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrMissingField,
		serrors.ErrInvalidEmailFormat,
		serrors.ErrStoreUnavailable,
		serrors.ErrStoreConstraintViolation,
		serrors.ErrDeliveryFailed,
		serrors.ErrUnhandled,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestKindStatus(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, serrors.ErrMissingField.Status())
	require.Equal(t, http.StatusBadRequest, serrors.ErrInvalidEmailFormat.Status())
	require.Equal(t, http.StatusInternalServerError, serrors.ErrStoreUnavailable.Status())
	require.Equal(t, http.StatusInternalServerError, serrors.ErrStoreConstraintViolation.Status())
	require.Equal(t, http.StatusInternalServerError, serrors.ErrDeliveryFailed.Status())
	require.Equal(t, http.StatusInternalServerError, serrors.ErrUnhandled.Status())
	require.Equal(t, http.StatusTooManyRequests, serrors.ErrRateLimited.Status())
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection refused")

	e1 := serrors.With(serrors.ErrMissingField, "field %s missing", "course")
	require.Equal(t, "field course missing", e1.Error())

	e2 := serrors.Wrap(serrors.ErrStoreUnavailable, base, "inserting referral")
	require.Equal(t, "inserting referral: connection refused", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrDeliveryFailed)
	require.Equal(t, "DELIVERY_FAILED", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrStoreUnavailable, base, "counting")

	require.ErrorIs(t, e, serrors.ErrStoreUnavailable)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrStoreConstraintViolation)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrDeliveryFailed, base, "sending")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrDeliveryFailed, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrStoreConstraintViolation, base, "bad row")
	require.Equal(t, serrors.ErrStoreConstraintViolation, e.Kind())
	require.Equal(t, "bad row", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrUnhandled, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrUnhandled, serrors.KindOf(nil))

	wrapped := fmt.Errorf("could not store referral: %w",
		serrors.Wrap(serrors.ErrStoreUnavailable, errors.New("dial tcp"), "insert"))
	require.Equal(t, serrors.ErrStoreUnavailable, serrors.KindOf(wrapped))
	require.Equal(t, http.StatusInternalServerError, serrors.StatusOf(wrapped))
}

func TestPublicMessage(t *testing.T) {
	const fallback = "generic"

	clientErr := serrors.With(serrors.ErrInvalidEmailFormat, "Invalid email format")
	require.Equal(t, "Invalid email format", serrors.PublicMessage(clientErr, fallback))
	require.Equal(t, "Invalid email format",
		serrors.PublicMessage(fmt.Errorf("validate: %w", clientErr), fallback))

	serverErr := serrors.Wrap(serrors.ErrStoreUnavailable, errors.New("secret dsn"), "insert failed")
	require.Equal(t, fallback, serrors.PublicMessage(serverErr, fallback))

	require.Equal(t, fallback, serrors.PublicMessage(errors.New("plain"), fallback))
	require.Equal(t, fallback, serrors.PublicMessage(serrors.KindOnly(serrors.ErrMissingField), fallback))
}
