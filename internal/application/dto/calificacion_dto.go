package dto

import (
	"encoding/json"
	"time"
)

// CreateCalificacionRequest registra una calificación.
type CreateCalificacionRequest struct {
	EstudianteID string   `json:"estudianteId" validate:"required,entityid"`
	Materia      string   `json:"materia" validate:"required,notblank"`
	Calificacion *float64 `json:"calificacion" validate:"required"`
	Evaluacion   string   `json:"evaluacion" validate:"required,notblank"`
}

// UpdateCalificacionRequest actualización parcial de una calificación.
type UpdateCalificacionRequest struct {
	Materia      *string    `json:"materia" validate:"omitempty,notblank"`
	Calificacion *float64   `json:"calificacion"`
	Evaluacion   *string    `json:"evaluacion" validate:"omitempty,notblank"`
	Fecha        *time.Time `json:"fecha"`
}

// CalificacionResponse salida de una calificación.
type CalificacionResponse struct {
	ID           string    `json:"id"`
	EstudianteID string    `json:"estudianteId"`
	Materia      string    `json:"materia"`
	Calificacion float64   `json:"calificacion"`
	Evaluacion   string    `json:"evaluacion"`
	Fecha        time.Time `json:"fecha"`
}

// RiskAnalysisRequest cuerpo enviado al servicio de riesgo académico.
type RiskAnalysisRequest struct {
	Grades           []float64 `json:"grades"`
	Attendance       []float64 `json:"attendance"`
	TutoringSessions int       `json:"tutoring_sessions"`
	EvaluationScores []float64 `json:"evaluation_scores"`
}

// RiskAnalysisResult campos devueltos por el servicio de riesgo. risk_factors y
// recommendations se reenvían sin interpretar.
type RiskAnalysisResult struct {
	RiskLevel       string          `json:"risk_level"`
	Confidence      float64         `json:"confidence"`
	RiskFactors     json.RawMessage `json:"risk_factors" swaggertype:"array,string"`
	Recommendations json.RawMessage `json:"recommendations" swaggertype:"array,string"`
}

// RiskResponse respuesta del endpoint de riesgo.
type RiskResponse struct {
	StudentID string `json:"studentId"`
	RiskAnalysisResult
}
