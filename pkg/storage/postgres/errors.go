package postgres

import (
	"errors"
	"referral/pkg/serrors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classify attaches a storage kind to err. Server errors that signal the
// database cannot serve requests right now map to ErrStoreUnavailable, every
// other server rejection to ErrStoreConstraintViolation. Errors that never
// reached the server (dial, TLS, pool closed, context) are unavailability.
func classify(err error, msg string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return serrors.Wrap(serrors.ErrStoreUnavailable, err, msg)
	}

	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsOperatorIntervention(pgErr.Code),
		pgerrcode.IsInsufficientResources(pgErr.Code):
		return serrors.Wrap(serrors.ErrStoreUnavailable, err, msg)
	default:
		return serrors.Wrap(serrors.ErrStoreConstraintViolation, err, msg)
	}
}
