package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/internal/domains/enrollment/model"
	"stay/shared"
	gRepo "stay/shared/repository"
)

type Enrollment interface {
	GetByUserID(ctx context.Context, userID int64) (model.Enrollment, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Enrollment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Enrollment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Enrollment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByUserID returns the zero model when the user has no enrollment.
func (r *repositoryImpl) GetByUserID(ctx context.Context, userID int64) (model.Enrollment, error) {
	return r.Get(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
}
