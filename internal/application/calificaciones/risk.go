package calificaciones

import (
	"context"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
)

// Sin registro de asistencia ni tutorías se asume asistencia completa y cero sesiones.
const (
	defaultAttendance       = 100
	defaultTutoringSessions = 0
)

// RiskForStudent arma el payload con las calificaciones del estudiante y consulta el servicio externo.
// Cualquier falla del servicio se reporta como ErrRiskServiceUnavailable.
func (uc *UseCase) RiskForStudent(ctx context.Context, studentID string) (*dto.RiskResponse, error) {
	list, err := uc.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	res, err := uc.risk.AnalyzeStudentRisk(ctx, BuildRiskRequest(list))
	if err != nil {
		return nil, domain.WithCause(domain.ErrRiskServiceUnavailable, err)
	}
	return &dto.RiskResponse{StudentID: studentID, RiskAnalysisResult: *res}, nil
}

// BuildRiskRequest deriva los arreglos que espera el servicio a partir de las calificaciones.
func BuildRiskRequest(list []*entity.Calificacion) dto.RiskAnalysisRequest {
	req := dto.RiskAnalysisRequest{
		Grades:           make([]float64, 0, len(list)),
		Attendance:       make([]float64, 0, len(list)),
		TutoringSessions: defaultTutoringSessions,
		EvaluationScores: make([]float64, 0, len(list)),
	}
	for _, c := range list {
		score := c.Score.InexactFloat64()
		req.Grades = append(req.Grades, score)
		req.Attendance = append(req.Attendance, defaultAttendance)
		req.EvaluationScores = append(req.EvaluationScores, score)
	}
	return req
}
