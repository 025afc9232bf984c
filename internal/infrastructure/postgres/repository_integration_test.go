package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
	"github.com/L20660042/Backend-Proy-sub001/internal/infrastructure/postgres"
	"github.com/L20660042/Backend-Proy-sub001/pkg/config"
)

// newTestPool levanta PostgreSQL en un contenedor y aplica las migraciones. Requiere Docker.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("integración con PostgreSQL omitida en modo -short")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("academico_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "no se pudo iniciar el contenedor de PostgreSQL")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool, false))
	return pool
}

func TestPostgres_Repositorios(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("usuarios: email duplicado y upsert", func(t *testing.T) {
		repo := postgres.NewUserRepository(pool)
		u := &entity.User{FullName: "Ana López", Email: "ana@escuela.mx", PasswordHash: "x", Role: "teacher", Active: true, CreatedAt: now, UpdatedAt: now}
		require.NoError(t, repo.Create(ctx, u))

		dup := *u
		dup.ID = ""
		assert.ErrorIs(t, repo.Create(ctx, &dup), domain.ErrDuplicate)

		up := &entity.User{FullName: "Ana L.", Email: "ana@escuela.mx", PasswordHash: "y", Role: "superadmin", Active: true, CreatedAt: now, UpdatedAt: now}
		require.NoError(t, repo.Upsert(ctx, up))
		assert.Equal(t, u.ID, up.ID)

		got, err := repo.GetByEmail(ctx, "ana@escuela.mx")
		require.NoError(t, err)
		assert.Equal(t, "superadmin", got.Role)

		_, err = repo.GetByID(ctx, "abc")
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})

	t.Run("docentes: filtro y orden", func(t *testing.T) {
		repo := postgres.NewTeacherRepository(pool)
		div := "65a1f0c2b3d4e5f6a7b8c9d0"
		for _, tc := range []entity.Teacher{
			{Name: "Zoe Díaz", EmployeeNumber: "E-3", DivisionID: &div, Status: "active"},
			{Name: "Ana Pérez", EmployeeNumber: "E-1", DivisionID: &div, Status: "active"},
			{Name: "Marta Gil", EmployeeNumber: "E-2", Status: "suspended"},
		} {
			tc := tc
			tc.CreatedAt, tc.UpdatedAt = now, now
			require.NoError(t, repo.Create(ctx, &tc))
		}
		list, err := repo.List(ctx, entity.TeacherFilter{DivisionID: &div})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Ana Pérez", list[0].Name)

		err = repo.Create(ctx, &entity.Teacher{Name: "Otro", EmployeeNumber: "E-1", Status: "active", CreatedAt: now, UpdatedAt: now})
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("calificaciones: decimal y orden de inserción", func(t *testing.T) {
		repo := postgres.NewCalificacionRepository(pool)
		student := "44444444-4444-4444-4444-44444444444a"
		for _, s := range []string{"90.5", "70", "85.25"} {
			require.NoError(t, repo.Create(ctx, &entity.Calificacion{
				StudentID: student, Subject: "Matemáticas", Score: decimal.RequireFromString(s), Evaluation: "Parcial", Date: now,
			}))
		}
		list, err := repo.ListByStudent(ctx, student)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.True(t, list[0].Score.Equal(decimal.RequireFromString("90.5")))
		assert.True(t, list[2].Score.Equal(decimal.RequireFromString("85.25")))
	})

	t.Run("calificaciones: score sin límite de rango ni precisión", func(t *testing.T) {
		repo := postgres.NewCalificacionRepository(pool)
		student := "55555555-5555-5555-5555-55555555555b"
		big := decimal.RequireFromString("1234567.123456")
		c := &entity.Calificacion{StudentID: student, Subject: "Física", Score: big, Evaluation: "Extra", Date: now}
		require.NoError(t, repo.Create(ctx, c))

		got, err := repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.Score.Equal(big), "score almacenado %s", got.Score)

		neg := decimal.RequireFromString("-0.0001")
		c.Score = neg
		found, err := repo.Update(ctx, c)
		require.NoError(t, err)
		assert.True(t, found)
		got, err = repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.True(t, got.Score.Equal(neg))
	})

	t.Run("inscripciones: tupla única y notas JSONB", func(t *testing.T) {
		repo := postgres.NewEnrollmentRepository(pool)
		e := &entity.Enrollment{
			Kind: "course", PeriodID: "p1", StudentID: "s1", TargetID: "c1", Status: "active", CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, repo.Create(ctx, e))

		dup := *e
		dup.ID = ""
		assert.ErrorIs(t, repo.Create(ctx, &dup), domain.ErrDuplicate)

		e.UnitGrades = []entity.UnitGrade{{Unit: 1, Score: 95}}
		found, err := repo.Update(ctx, e)
		require.NoError(t, err)
		assert.True(t, found)

		got, err := repo.GetByID(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, []entity.UnitGrade{{Unit: 1, Score: 95}}, got.UnitGrades)
	})
}
