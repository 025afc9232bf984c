package validation_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/validation"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
)

const (
	uuidID     = "3f2b8a4e-9c1d-4e5f-8a7b-6c5d4e3f2a1b"
	objectID   = "65a1f0c2b3d4e5f6a7b8c9d0"
	otroObject = "65a1f0c2b3d4e5f6a7b8c9d1"
)

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *validation.ValidationError
	require.ErrorAs(t, err, &verr)
	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func score(v float64) *float64 { return &v }

// ─── Notas por unidad ──────────────────────────────────────────────────────────

func TestUnitGrades_FueraDeRangoRechazadas(t *testing.T) {
	v := validation.New()

	for _, s := range []float64{101, -1} {
		err := v.Struct(dto.UpdateUnitGradesRequest{Grades: []dto.UnitGradeInput{{Unit: 1, Score: score(s)}}})
		require.Error(t, err, "score %v", s)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, fields(t, err), "grades[0].score")
	}
}

func TestUnitGrades_LimitesAceptados(t *testing.T) {
	v := validation.New()

	err := v.Struct(dto.UpdateUnitGradesRequest{Grades: []dto.UnitGradeInput{
		{Unit: 1, Score: score(0)},
		{Unit: 2, Score: score(100)},
	}})
	assert.NoError(t, err)
}

func TestUnitGrades_ScoreAusenteRechazado(t *testing.T) {
	err := validation.New().Struct(dto.UpdateUnitGradesRequest{Grades: []dto.UnitGradeInput{{Unit: 1}}})
	assert.Contains(t, fields(t, err), "grades[0].score")
}

func TestUnitGrades_ListaVaciaRechazada(t *testing.T) {
	err := validation.New().Struct(dto.UpdateUnitGradesRequest{Grades: []dto.UnitGradeInput{}})
	assert.Contains(t, fields(t, err), "grades")
}

// ─── Inscripción masiva ───────────────────────────────────────────────────────

func TestBulkActivity_ListaVaciaRechazada(t *testing.T) {
	err := validation.New().Struct(dto.BulkActivityEnrollmentRequest{
		PeriodID: objectID, ActivityID: otroObject, StudentIDs: []string{},
	})
	assert.Contains(t, fields(t, err), "studentIds")
}

func TestBulkActivity_UnEstudianteAceptado(t *testing.T) {
	err := validation.New().Struct(dto.BulkActivityEnrollmentRequest{
		PeriodID: objectID, ActivityID: otroObject, StudentIDs: []string{uuidID},
	})
	assert.NoError(t, err)
}

func TestBulkActivity_IDMalformadoEnLista(t *testing.T) {
	err := validation.New().Struct(dto.BulkActivityEnrollmentRequest{
		PeriodID: objectID, ActivityID: otroObject, StudentIDs: []string{uuidID, "abc"},
	})
	assert.Contains(t, fields(t, err), "studentIds[1]")
}

func TestEnrollmentStatus_SoloActiveInactive(t *testing.T) {
	v := validation.New()
	assert.NoError(t, v.Struct(dto.UpdateEnrollmentStatusRequest{Status: "inactive"}))

	err := v.Struct(dto.UpdateEnrollmentStatusRequest{Status: "suspended"})
	assert.Contains(t, fields(t, err), "status")
}

// ─── Docentes ─────────────────────────────────────────────────────────────────

func TestCreateTeacher_ReportaTodosLosCampos(t *testing.T) {
	bad := "no-es-id"
	err := validation.New().Struct(dto.CreateTeacherRequest{
		Name:       "Al",
		DivisionID: &bad,
		Status:     "retired",
	})

	f := fields(t, err)
	assert.Len(t, f, 4)
	assert.Contains(t, f, "name")
	assert.Contains(t, f, "employeeNumber")
	assert.Contains(t, f, "divisionId")
	assert.Contains(t, f, "status")
	assert.Equal(t, "divisionId debe ser un identificador válido", f["divisionId"])
}

func TestUpdateTeacher_DivisionNullValida(t *testing.T) {
	v := validation.New()

	var req dto.UpdateTeacherRequest
	require.NoError(t, json.Unmarshal([]byte(`{"divisionId":null}`), &req))
	assert.NoError(t, v.Struct(req))

	require.NoError(t, json.Unmarshal([]byte(`{"divisionId":"x"}`), &req))
	assert.Contains(t, fields(t, v.Struct(req)), "divisionId")
}

func TestUpdateTeacher_NombreEnBlanco(t *testing.T) {
	blank := "    "
	err := validation.New().Struct(dto.UpdateTeacherRequest{Name: &blank})
	assert.Contains(t, fields(t, err), "name")
}

func TestCreateTeacher_NombreCortoConEspacios(t *testing.T) {
	err := validation.New().Struct(dto.CreateTeacherRequest{Name: "  ab  ", EmployeeNumber: "E1"})
	f := fields(t, err)
	assert.Len(t, f, 1)
	assert.Equal(t, "name debe tener al menos 3 caracteres sin contar espacios", f["name"])

	assert.NoError(t, validation.New().Struct(dto.CreateTeacherRequest{Name: " Ana ", EmployeeNumber: "E1"}))
}

// ─── Usuarios y calificaciones ────────────────────────────────────────────────

func TestCreateUser_NombreYPasswordLimites(t *testing.T) {
	err := validation.New().Struct(dto.CreateUserRequest{
		FullName: "  ab ", Email: "ana@escuela.mx", Password: strings.Repeat("x", 73), Role: "teacher",
	})
	f := fields(t, err)
	assert.Len(t, f, 2)
	assert.Contains(t, f, "fullName")
	assert.Contains(t, f, "password")

	assert.NoError(t, validation.New().Struct(dto.CreateUserRequest{
		FullName: "Ana", Email: "ana@escuela.mx", Password: strings.Repeat("x", 72), Role: "teacher",
	}))
}

func TestCreateUser_RolDesconocido(t *testing.T) {
	err := validation.New().Struct(dto.CreateUserRequest{
		FullName: "Ana López", Email: "ana@escuela.mx", Password: "secreta123", Role: "rector",
	})
	f := fields(t, err)
	assert.Len(t, f, 1)
	assert.Contains(t, f["role"], "superadmin")
}

func TestCreateCalificacion_CeroEsValido(t *testing.T) {
	err := validation.New().Struct(dto.CreateCalificacionRequest{
		EstudianteID: objectID, Materia: "Matemáticas", Calificacion: score(0), Evaluacion: "Parcial 1",
	})
	assert.NoError(t, err)
}

func TestCreateCalificacion_SinCalificacion(t *testing.T) {
	err := validation.New().Struct(dto.CreateCalificacionRequest{
		EstudianteID: objectID, Materia: "Matemáticas", Evaluacion: "Parcial 1",
	})
	assert.Contains(t, fields(t, err), "calificacion")
}

func TestIsEntityID(t *testing.T) {
	assert.True(t, validation.IsEntityID(uuidID))
	assert.True(t, validation.IsEntityID(objectID))
	assert.False(t, validation.IsEntityID("65a1f0c2b3d4e5f6a7b8c9dz"))
	assert.False(t, validation.IsEntityID("{"+uuidID+"}"))
	assert.False(t, validation.IsEntityID(""))
}
