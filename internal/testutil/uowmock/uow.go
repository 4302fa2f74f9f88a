// Package uowmock runs unit-of-work callbacks against whatever repositories
// the test wires in, without a real transaction.
package uowmock

import (
	"context"

	"scholarhub-backend/internal/domain/uow"
)

type UoW struct {
	Repos      uow.Repos
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}
