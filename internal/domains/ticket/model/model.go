package model

import "stay/shared/model"

const (
	TableName      = "tickets"
	EntityName     = "ticket"
	TypeTableName  = "ticket_types"
	TypeEntityName = "ticket_type"

	FieldID           = "id"
	FieldEnrollmentID = "enrollment_id"
)

// Ticket status lifecycle. A ticket starts RESERVED and becomes PAID once
// the payment is processed.
const (
	TicketStatusReserved = "RESERVED"
	TicketStatusPaid     = "PAID"
)

type Ticket struct {
	ID           int64  `db:"id"`
	TicketTypeID int64  `db:"ticket_type_id"`
	EnrollmentID int64  `db:"enrollment_id"`
	Status       string `db:"status"`
	model.Metadata
}

// TicketType describes what a ticket grants. Remote tickets and tickets
// without hotel coverage never unlock the hotel listing.
type TicketType struct {
	ID            int64  `db:"id"`
	Name          string `db:"name"`
	Price         int64  `db:"price"`
	IsRemote      bool   `db:"is_remote"`
	IncludesHotel bool   `db:"includes_hotel"`
	model.Metadata
}
