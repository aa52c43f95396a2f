package model

import "stay/shared/model"

const (
	TableName  = "enrollments"
	EntityName = "enrollment"

	FieldID     = "id"
	FieldUserID = "user_id"
)

// Enrollment is the registration record a user must hold before buying a
// ticket. The optional address lives in its own table and is never read by
// the eligibility check, so it is not mapped here.
type Enrollment struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	Phone  string `db:"phone"`
	UserID int64  `db:"user_id"`
	model.Metadata
}
