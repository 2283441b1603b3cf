package unitofwork

import (
	"context"

	"bookquiz-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	BookRepository() contract.BookRepository
	ThemeRepository() contract.ThemeRepository
	QuestionRepository() contract.QuestionRepository
	UserProgressRepository() contract.UserProgressRepository
	GenerationRunRepository() contract.GenerationRunRepository
}
