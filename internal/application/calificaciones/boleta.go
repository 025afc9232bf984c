package calificaciones

import (
	"context"
	"errors"
	"fmt"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/ports"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
)

// ReportCard genera el PDF de la boleta de calificaciones del estudiante.
// Si el estudiante no está registrado como usuario, o su id no tiene el formato del
// almacén de usuarios, se usa el id como nombre.
func (uc *UseCase) ReportCard(ctx context.Context, studentID string) ([]byte, error) {
	if uc.reporter == nil {
		return nil, fmt.Errorf("boleta: generador PDF no configurado")
	}
	grades, err := uc.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	name := studentID
	if uc.users != nil {
		u, err := uc.users.GetByID(ctx, studentID)
		if err != nil && !errors.Is(err, domain.ErrInvalidID) {
			return nil, err
		}
		if u != nil {
			name = u.FullName
		}
	}
	pdf, err := uc.reporter.Generate(ports.ReportCard{
		StudentID:   studentID,
		StudentName: name,
		GeneratedAt: uc.now(),
		Grades:      grades,
	})
	if err != nil {
		return nil, fmt.Errorf("boleta: generar PDF: %w", err)
	}
	return pdf, nil
}
