package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-foodapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// UnitOfWork scopes the cart and outbox repositories to one transaction, so a
// cart change and the event announcing it are committed together.
type UnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
}

// NewUnitOfWork returns a unit of work that is not yet bound to a transaction.
func NewUnitOfWork(db *sql.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Execute runs fn in a transaction and commits when fn returns nil.
// Calling Execute on a unit of work that is already transactional joins the
// outer transaction instead of opening a new one.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(uow domain.UnitOfWork) error) (err error) {
	if u.tx != nil {
		return fn(u)
	}

	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	defer func() {
		telemetry.RecordErrorAndStatus(span, err)
	}()

	tx, err := u.db.BeginTx(spanCtx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(&UnitOfWork{db: u.db, tx: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction rollback error: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Cart returns the cart repository bound to this unit of work.
func (u *UnitOfWork) Cart() domain.CartRepository {
	return NewCartRepository(u.runner())
}

// Outbox returns the outbox repository bound to this unit of work.
func (u *UnitOfWork) Outbox() domain.OutboxRepository {
	return NewOutboxRepository(u.runner())
}

func (u *UnitOfWork) runner() squirrel.BaseRunner {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// InitUnitOfWork registers the Postgres domain.UnitOfWork.
type InitUnitOfWork struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the UnitOfWork in the dependency container.
func (iuw InitUnitOfWork) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.UnitOfWork](NewUnitOfWork(iuw.DB))
	return ctx, nil
}
