package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Calificacion nota de un estudiante en una materia para una evaluación.
// El rango de Score no se restringe en persistencia.
type Calificacion struct {
	ID         string
	StudentID  string
	Subject    string
	Score      decimal.Decimal
	Evaluation string
	Date       time.Time
}
