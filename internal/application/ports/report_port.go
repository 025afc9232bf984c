package ports

import (
	"time"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
)

// ReportCard datos de la boleta de calificaciones de un estudiante.
type ReportCard struct {
	StudentID   string
	StudentName string
	GeneratedAt time.Time
	Grades      []*entity.Calificacion
}

// ReportCardGenerator genera el PDF de la boleta.
type ReportCardGenerator interface {
	Generate(card ReportCard) ([]byte, error)
}
