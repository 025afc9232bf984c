// Package pdf genera la boleta de calificaciones de un estudiante.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + institución  │  Fecha de emisión          │
//	│  ESTUDIANTE: nombre + id                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Materia | Evaluación | Fecha | Calificación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROMEDIO                                                    │
//	│  FOOTER: QR de verificación + leyenda                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/ports"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
)

var _ ports.ReportCardGenerator = (*BoletaGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// BoletaGenerator implementa ports.ReportCardGenerator con Maroto v2.
type BoletaGenerator struct {
	institution string
}

// NewBoletaGenerator construye el generador; institution aparece en el encabezado.
func NewBoletaGenerator(institution string) *BoletaGenerator {
	return &BoletaGenerator{institution: institution}
}

// Generate arma el PDF y devuelve sus bytes.
func (g *BoletaGenerator) Generate(card ports.ReportCard) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Boleta de calificaciones", true).
		WithAuthor(g.institution, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(card))
	m.AddRows(studentRow(card))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(gradeRows(card.Grades)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(averageRow(card.Grades))

	m.AddRows(line.NewRow(4))
	m.AddRows(footerRow(card))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar boleta: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *BoletaGenerator) headerRow(card ports.ReportCard) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("BOLETA DE CALIFICACIONES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(g.institution, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Emitida: "+card.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func studentRow(card ports.ReportCard) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ESTUDIANTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(fmt.Sprintf("%s   |   ID: %s", card.StudentName, card.StudentID), props.Text{
				Size: 10, Top: 6,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Materia", 4, align.Left),
		h("Evaluación", 3, align.Left),
		h("Fecha", 3, align.Center),
		h("Calificación", 2, align.Right),
	)
}

func gradeRows(grades []*entity.Calificacion) []core.Row {
	if len(grades) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin calificaciones registradas.", props.Text{Size: 8, Top: 2, Color: colorGray, Align: align.Center}),
		))}
	}
	rows := make([]core.Row, 0, len(grades))
	for _, c := range grades {
		rows = append(rows, row.New(7).Add(
			col.New(4).Add(text.New(c.Subject, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(c.Evaluation, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(c.Date.Format("02/01/2006"), props.Text{Size: 8, Top: 1, Align: align.Center})),
			col.New(2).Add(text.New(c.Score.StringFixed(2), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	return rows
}

func averageRow(grades []*entity.Calificacion) core.Row {
	avg := "—"
	if len(grades) > 0 {
		avg = Average(grades).StringFixed(2)
	}
	return row.New(10).Add(
		col.New(10).Add(text.New("PROMEDIO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New(avg, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func footerRow(card ports.ReportCard) core.Row {
	qr := fmt.Sprintf("boleta:%s:%s", card.StudentID, card.GeneratedAt.Format("20060102T150405Z"))
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(qr, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Documento informativo generado por el sistema académico.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("El código QR identifica al estudiante y la fecha de emisión.", props.Text{
				Size: 7, Top: 12, Left: 3, Color: colorGray,
			}),
		),
	)
}

// Average promedio aritmético de las calificaciones (cero si no hay).
func Average(grades []*entity.Calificacion) decimal.Decimal {
	if len(grades) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, c := range grades {
		sum = sum.Add(c.Score)
	}
	return sum.Div(decimal.NewFromInt(int64(len(grades))))
}
