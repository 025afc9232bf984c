package dto

import "time"

// CreateCourseEnrollmentRequest inscripción de un estudiante a un curso en un periodo.
type CreateCourseEnrollmentRequest struct {
	PeriodID  string `json:"periodId" validate:"required,entityid"`
	StudentID string `json:"studentId" validate:"required,entityid"`
	CourseID  string `json:"courseId" validate:"required,entityid"`
	Status    string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CreateActivityEnrollmentRequest inscripción de un estudiante a una actividad complementaria.
type CreateActivityEnrollmentRequest struct {
	PeriodID   string `json:"periodId" validate:"required,entityid"`
	StudentID  string `json:"studentId" validate:"required,entityid"`
	ActivityID string `json:"activityId" validate:"required,entityid"`
	Status     string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// BulkActivityEnrollmentRequest inscribe varios estudiantes a una actividad/periodo.
type BulkActivityEnrollmentRequest struct {
	PeriodID   string   `json:"periodId" validate:"required,entityid"`
	ActivityID string   `json:"activityId" validate:"required,entityid"`
	StudentIDs []string `json:"studentIds" validate:"required,min=1,dive,required,entityid"`
	Status     string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateEnrollmentStatusRequest cambia el estado de una inscripción.
type UpdateEnrollmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// UnitGradeInput nota de una unidad; acotada a [0,100].
type UnitGradeInput struct {
	Unit  int      `json:"unit" validate:"required,min=1"`
	Score *float64 `json:"score" validate:"required,gte=0,lte=100"`
}

// UpdateUnitGradesRequest reemplaza/agrega notas por unidad de una inscripción a curso.
type UpdateUnitGradesRequest struct {
	Grades []UnitGradeInput `json:"grades" validate:"required,min=1,dive"`
}

// EnrollmentListQuery filtros opcionales de listado.
type EnrollmentListQuery struct {
	Kind      string `query:"kind" validate:"omitempty,oneof=course activity"`
	PeriodID  string `query:"periodId" validate:"omitempty,entityid"`
	StudentID string `query:"studentId" validate:"omitempty,entityid"`
	TargetID  string `query:"targetId" validate:"omitempty,entityid"`
	Status    string `query:"status" validate:"omitempty,oneof=active inactive"`
}

// UnitGradeResponse nota por unidad.
type UnitGradeResponse struct {
	Unit  int     `json:"unit"`
	Score float64 `json:"score"`
}

// EnrollmentResponse salida de una inscripción.
type EnrollmentResponse struct {
	ID         string              `json:"id"`
	Kind       string              `json:"kind"`
	PeriodID   string              `json:"periodId"`
	StudentID  string              `json:"studentId"`
	TargetID   string              `json:"targetId"`
	Status     string              `json:"status"`
	UnitGrades []UnitGradeResponse `json:"unitGrades,omitempty"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// BulkEnrollmentResponse resultado de una inscripción masiva.
type BulkEnrollmentResponse struct {
	Created    []EnrollmentResponse `json:"created"`
	Duplicates []string             `json:"duplicates"`
}
