package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type txKey struct{}

// Queryer is satisfied by both *sqlx.DB and *sqlx.Tx.
type Queryer interface {
	sqlx.ExtContext
}

// Conn returns the transaction bound to ctx, or db when none is active.
func Conn(ctx context.Context, db *sqlx.DB) Queryer {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok && tx != nil {
		return tx
	}
	return db
}

// Transactor runs units of work inside a single database transaction.
type Transactor struct {
	db *sqlx.DB
}

// NewTransactor constructs a Transactor.
func NewTransactor(db *sqlx.DB) *Transactor {
	return &Transactor{db: db}
}

// WithinTx executes fn with a transaction bound to the context. Nested calls reuse the outer transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("%w (rollback: %v)", err, rbErr)
			}
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

const uniqueViolation = "23505"

// IsUniqueViolation reports whether err carries PostgreSQL's unique_violation code.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

const foreignKeyViolation = "23503"

// IsForeignKeyViolation reports whether err carries PostgreSQL's foreign_key_violation code.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
