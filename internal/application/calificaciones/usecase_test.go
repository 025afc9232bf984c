package calificaciones_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/calificaciones"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/ports"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
	"github.com/L20660042/Backend-Proy-sub001/internal/testutil/memrepo"
)

const (
	studentID = "44444444-4444-4444-4444-44444444444a"
	missingID = "00000000-0000-0000-0000-0000000000ff"
)

type fakeScorer struct {
	got dto.RiskAnalysisRequest
	res *dto.RiskAnalysisResult
	err error
}

func (f *fakeScorer) AnalyzeStudentRisk(_ context.Context, req dto.RiskAnalysisRequest) (*dto.RiskAnalysisResult, error) {
	f.got = req
	return f.res, f.err
}

type fakeReporter struct{ got ports.ReportCard }

func (f *fakeReporter) Generate(card ports.ReportCard) ([]byte, error) {
	f.got = card
	return []byte("%PDF-1.4"), nil
}

func f64(v float64) *float64 { return &v }
func strp(s string) *string  { return &s }

func create(t *testing.T, uc *calificaciones.UseCase, materia string, score float64) *dto.CalificacionResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), dto.CreateCalificacionRequest{
		EstudianteID: studentID, Materia: materia, Calificacion: f64(score), Evaluacion: "Parcial 1",
	})
	require.NoError(t, err)
	return out
}

func TestCreate_FechaPorDefecto(t *testing.T) {
	uc := calificaciones.NewUseCase(memrepo.NewCalificaciones(), nil, &fakeScorer{}, nil)

	before := time.Now().UTC().Add(-time.Second)
	out := create(t, uc, "  Matemáticas ", 87.5)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Matemáticas", out.Materia)
	assert.Equal(t, 87.5, out.Calificacion)
	assert.True(t, out.Fecha.After(before))
}

func TestListByStudent_SoloDelEstudiante(t *testing.T) {
	repo := memrepo.NewCalificaciones()
	uc := calificaciones.NewUseCase(repo, nil, &fakeScorer{}, nil)
	create(t, uc, "Matemáticas", 90)
	create(t, uc, "Historia", 70)
	_ = repo.Create(context.Background(), &entity.Calificacion{StudentID: missingID, Subject: "Física"})

	list, err := uc.ListByStudent(context.Background(), studentID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Matemáticas", list[0].Materia)
	assert.Equal(t, "Historia", list[1].Materia)
}

func TestUpdate_Parcial(t *testing.T) {
	uc := calificaciones.NewUseCase(memrepo.NewCalificaciones(), nil, &fakeScorer{}, nil)
	created := create(t, uc, "Matemáticas", 60)

	out, err := uc.Update(context.Background(), created.ID, dto.UpdateCalificacionRequest{Calificacion: f64(75)})
	require.NoError(t, err)
	assert.Equal(t, 75.0, out.Calificacion)
	assert.Equal(t, "Matemáticas", out.Materia)
	assert.Equal(t, "Parcial 1", out.Evaluacion)
}

func TestUpdate_IDMalformadoYNoExiste(t *testing.T) {
	uc := calificaciones.NewUseCase(memrepo.NewCalificaciones(), nil, &fakeScorer{}, nil)

	_, err := uc.Update(context.Background(), "no-es-id", dto.UpdateCalificacionRequest{Materia: strp("Física")})
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = uc.Update(context.Background(), missingID, dto.UpdateCalificacionRequest{Materia: strp("Física")})
	assert.ErrorIs(t, err, domain.ErrCalificacionNotFound)
}

func TestDelete(t *testing.T) {
	uc := calificaciones.NewUseCase(memrepo.NewCalificaciones(), nil, &fakeScorer{}, nil)
	created := create(t, uc, "Matemáticas", 60)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, uc.Delete(context.Background(), created.ID), domain.ErrCalificacionNotFound)
}

func TestRiskForStudent_ConstruyePayload(t *testing.T) {
	scorer := &fakeScorer{res: &dto.RiskAnalysisResult{
		RiskLevel:       "medium",
		Confidence:      0.72,
		RiskFactors:     json.RawMessage(`["promedio bajo"]`),
		Recommendations: json.RawMessage(`["tutoría"]`),
	}}
	uc := calificaciones.NewUseCase(memrepo.NewCalificaciones(), nil, scorer, nil)
	create(t, uc, "Matemáticas", 90)
	create(t, uc, "Historia", 70)
	create(t, uc, "Física", 85)

	out, err := uc.RiskForStudent(context.Background(), studentID)
	require.NoError(t, err)

	assert.Equal(t, []float64{90, 70, 85}, scorer.got.Grades)
	assert.Equal(t, []float64{100, 100, 100}, scorer.got.Attendance)
	assert.Equal(t, 0, scorer.got.TutoringSessions)
	assert.Equal(t, []float64{90, 70, 85}, scorer.got.EvaluationScores)

	assert.Equal(t, studentID, out.StudentID)
	assert.Equal(t, "medium", out.RiskLevel)
	assert.JSONEq(t, `["tutoría"]`, string(out.Recommendations))
}

func TestRiskForStudent_SinCalificacionesEnviaArreglosVacios(t *testing.T) {
	scorer := &fakeScorer{res: &dto.RiskAnalysisResult{RiskLevel: "low"}}
	uc := calificaciones.NewUseCase(memrepo.NewCalificaciones(), nil, scorer, nil)

	_, err := uc.RiskForStudent(context.Background(), studentID)
	require.NoError(t, err)

	body, err := json.Marshal(scorer.got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"grades":[],"attendance":[],"tutoring_sessions":0,"evaluation_scores":[]}`, string(body))
}

func TestRiskForStudent_FallaServicioEsBadGateway(t *testing.T) {
	scorer := &fakeScorer{err: errors.New("riesgo: HTTP 500")}
	uc := calificaciones.NewUseCase(memrepo.NewCalificaciones(), nil, scorer, nil)
	create(t, uc, "Matemáticas", 90)

	_, err := uc.RiskForStudent(context.Background(), studentID)
	assert.ErrorIs(t, err, domain.ErrRiskServiceUnavailable)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, "no se pudo contactar el servicio de riesgo académico", domain.Message(err))
}

func TestReportCard_UsaNombreDelUsuario(t *testing.T) {
	users := memrepo.NewUsers()
	require.NoError(t, users.Create(context.Background(), &entity.User{
		ID: studentID, FullName: "Laura Méndez", Email: "laura@escuela.mx", Role: entity.RoleStudent,
	}))
	reporter := &fakeReporter{}
	uc := calificaciones.NewUseCase(memrepo.NewCalificaciones(), users, &fakeScorer{}, reporter)
	create(t, uc, "Matemáticas", 90)

	pdf, err := uc.ReportCard(context.Background(), studentID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "Laura Méndez", reporter.got.StudentName)
	assert.Len(t, reporter.got.Grades, 1)
}

func TestReportCard_IDConFormatoAjenoAlAlmacenDeUsuarios(t *testing.T) {
	const objectID = "65a1f0c2b3d4e5f6a7b8c9d0"
	reporter := &fakeReporter{}
	uc := calificaciones.NewUseCase(memrepo.NewCalificaciones(), memrepo.NewUsers(), &fakeScorer{}, reporter)
	_, err := uc.Create(context.Background(), dto.CreateCalificacionRequest{
		EstudianteID: objectID, Materia: "Historia", Calificacion: f64(88), Evaluacion: "Final",
	})
	require.NoError(t, err)

	pdf, err := uc.ReportCard(context.Background(), objectID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, objectID, reporter.got.StudentName)
	assert.Len(t, reporter.got.Grades, 1)
}
