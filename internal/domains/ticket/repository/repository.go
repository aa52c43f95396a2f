package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/internal/domains/ticket/model"
	"stay/shared"
	"stay/shared/logger"
	gRepo "stay/shared/repository"
)

const otelScopeName = "domains.ticket.repository"

type Ticket interface {
	GetByEnrollmentID(ctx context.Context, enrollmentID int64) (model.Ticket, error)
	GetTypeByTicketID(ctx context.Context, ticketID int64) (model.TicketType, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Ticket]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Ticket {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Ticket](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByEnrollmentID returns the zero model when the enrollment has no ticket.
func (r *repositoryImpl) GetByEnrollmentID(ctx context.Context, enrollmentID int64) (model.Ticket, error) {
	return r.Get(ctx, shared.FilterByID(enrollmentID, model.FieldEnrollmentID, model.TableName))
}

// GetTypeByTicketID resolves the type of a ticket in a single round trip.
// It returns the zero model when either side of the join is missing.
func (r *repositoryImpl) GetTypeByTicketID(ctx context.Context, ticketID int64) (ticketType model.TicketType, err error) {
	ctx, scope := r.otel.NewScope(ctx, otelScopeName, otelScopeName+".GetTypeByTicketID")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(`SELECT tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel, tt.created_at, tt.updated_at
		FROM %s tt
		JOIN %s t ON t.ticket_type_id = tt.id
		WHERE t.id = $1`, model.TypeTableName, model.TableName)

	stmt, err := r.db.Read.PreparexContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		return ticketType, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &ticketType, ticketID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.TicketType{}, nil
		}

		logger.ErrorWithStack(err)
		return ticketType, fmt.Errorf("failed to get %s: %w", model.TypeEntityName, err)
	}

	return ticketType, nil
}
