// Package storage defines the storage interfaces the referral service relies on.
// It abstracts persistence operations and transaction management so that
// different backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"referral/pkg/domain"
)

// ReferralStorage persists referrals and answers the statistics queries.
// Referrals are append-only: there is no update or delete path.
type ReferralStorage interface {
	// CreateReferral inserts ref and returns the stored row, including the
	// identifier and creation time assigned by the store.
	CreateReferral(ctx context.Context, ref domain.Referral) (*domain.Referral, error)
	// ReferralCount returns the number of stored referrals.
	ReferralCount(ctx context.Context) (int64, error)
	// RecentReferrals returns up to limit referrals, newest first.
	RecentReferrals(ctx context.Context, limit uint) ([]domain.ReferralSummary, error)
}

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	ReferralStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. Implementations should become unusable after Commit or
// Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions and lifecycle management.
type Storage interface {
	AllStorage

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context, opts TxOptions) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, and then commits on
	// success or rolls back if cb returns an error.
	WithTx(ctx context.Context, opts TxOptions, cb func(storage AllStorage) error) error
}

// TxOptions tunes a transaction.
type TxOptions struct {
	// ReadOnly marks the transaction read-only. Combined with a repeatable read
	// isolation level, every query inside sees the same snapshot.
	ReadOnly bool
}
