package entity

import "time"

// Tipos de inscripción.
const (
	EnrollmentKindCourse   = "course"
	EnrollmentKindActivity = "activity"
)

// Estados de una inscripción.
const (
	EnrollmentStatusActive   = "active"
	EnrollmentStatusInactive = "inactive"
)

// UnitGrade nota de una unidad dentro de una inscripción a curso.
type UnitGrade struct {
	Unit  int     `json:"unit"`
	Score float64 `json:"score"`
}

// Enrollment vincula periodo, estudiante y curso o actividad complementaria (TargetID).
// (Kind, PeriodID, StudentID, TargetID) es único.
type Enrollment struct {
	ID         string
	Kind       string
	PeriodID   string
	StudentID  string
	TargetID   string
	Status     string
	UnitGrades []UnitGrade // solo Kind == course
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EnrollmentFilter filtro de igualdad para listados; los campos vacíos no filtran.
type EnrollmentFilter struct {
	Kind      string
	PeriodID  string
	StudentID string
	TargetID  string
	Status    string
}
