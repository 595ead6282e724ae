package uowmock

import (
	"context"
	"errors"

	"greentracker-backend/internal/domain/uow"
)

var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: WithinTx not configured")

// UoW satisfies uow.UnitOfWork with a pluggable body. Calls counts WithinTx invocations.
type UoW struct {
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
	Calls      int
}

// Passthrough runs every transaction body against repos without a real transaction.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error { return fn(repos) }}
}

// Failing never runs the body; every WithinTx returns err as if BEGIN failed.
func Failing(err error) *UoW {
	return &UoW{WithinTxFn: func(context.Context, func(uow.Repos) error) error { return err }}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	m.Calls++
	if m.WithinTxFn == nil {
		return errUnimplemented
	}
	return m.WithinTxFn(ctx, fn)
}
