package dto

import (
	"stay/shared/constant"
	"stay/shared/model"
	"stay/shared/timezone"
)

// Metadata carries entity timestamps serialized the way the upstream
// clients expect them: camelCase keys, ISO-8601 values.
type Metadata struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.UpdatedAt = timezone.Format(model.UpdatedAt, constant.DateFormat)
}
