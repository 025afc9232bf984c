package dto

import "time"

// CreateTeacherRequest alta de docente.
type CreateTeacherRequest struct {
	Name           string  `json:"name" validate:"required,notblank,trimmin=3"`
	EmployeeNumber string  `json:"employeeNumber" validate:"required,notblank"`
	DivisionID     *string `json:"divisionId" validate:"omitempty,entityid"`
	Status         string  `json:"status" validate:"omitempty,oneof=active inactive suspended"`
}

// UpdateTeacherRequest actualización parcial. DivisionID con null explícito desasigna la división.
type UpdateTeacherRequest struct {
	Name           *string          `json:"name" validate:"omitempty,notblank,trimmin=3"`
	EmployeeNumber *string          `json:"employeeNumber" validate:"omitempty,notblank"`
	DivisionID     Nullable[string] `json:"divisionId" validate:"omitempty,entityid" swaggertype:"string"`
	Status         *string          `json:"status" validate:"omitempty,oneof=active inactive suspended"`
}

// TeacherListQuery filtros opcionales de listado.
type TeacherListQuery struct {
	Status     string `query:"status" validate:"omitempty,oneof=active inactive suspended"`
	DivisionID string `query:"divisionId" validate:"omitempty,entityid"`
}

// TeacherResponse salida de un docente.
type TeacherResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	EmployeeNumber string    `json:"employeeNumber"`
	DivisionID     *string   `json:"divisionId"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
