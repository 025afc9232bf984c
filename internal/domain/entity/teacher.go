package entity

import "time"

// Estados de un docente.
const (
	TeacherStatusActive    = "active"
	TeacherStatusInactive  = "inactive"
	TeacherStatusSuspended = "suspended"
)

// Teacher expediente de un docente. EmployeeNumber es único entre docentes.
type Teacher struct {
	ID             string
	Name           string
	EmployeeNumber string
	DivisionID     *string // nil = sin división asignada
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TeacherFilter filtro de igualdad para listados; los campos nil no filtran.
type TeacherFilter struct {
	Status     *string
	DivisionID *string
}
