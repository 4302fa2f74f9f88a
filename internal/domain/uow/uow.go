package uow

import (
	"context"

	"scholarhub-backend/internal/domain/application"
	"scholarhub-backend/internal/domain/scholarship"
	"scholarhub-backend/internal/domain/student"
	"scholarhub-backend/internal/domain/user"
)

type Repos struct {
	Applications application.Repository
	Students     student.Repository
	Scholarships scholarship.Repository
	Users        user.Repository
}

// UnitOfWork runs fn inside one transaction; every repository in Repos is
// bound to that transaction so student bootstrap and application insert
// commit or roll back together.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
