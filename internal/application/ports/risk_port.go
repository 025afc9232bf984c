package ports

import (
	"context"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
)

// RiskScorer puerto de salida hacia el servicio externo de riesgo académico.
// El adaptador reenvía el cuerpo tal cual y devuelve la respuesta sin interpretarla.
// El contexto debe acotar la duración de la llamada.
type RiskScorer interface {
	AnalyzeStudentRisk(ctx context.Context, req dto.RiskAnalysisRequest) (*dto.RiskAnalysisResult, error)
}
