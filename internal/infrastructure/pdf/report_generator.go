// Package pdf genera el reporte de respaldo del back-office: el catálogo de
// cafés y el tablero de pedidos en un A4 sencillo.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Bean & Brews + fecha de generación                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA STOCK: Café | Origen | Existencias | Precio/bolsa    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA PEDIDOS: ID | Cliente | Fecha | Estado | Items       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/beanbrews-backoffice/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 79, Green: 64, Blue: 59} // café tostado
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 40, Blue: 30}
)

// El precio se muestra en rupias con separador de miles indonesio.
var moneyPrinter = message.NewPrinter(language.Indonesian)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportGenerator genera el reporte del back-office usando Maroto v2.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// GenerateBackofficeReport genera el PDF y devuelve sus bytes. El nombre de
// cada línea de pedido se resuelve contra el catálogo recibido.
func (g *ReportGenerator) GenerateBackofficeReport(
	stocks []entity.StockItem,
	orders []entity.Order,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Bean & Brews — Back-Office Report", true).
		Build()

	m := maroto.New(cfg)

	byID := make(map[int]entity.StockItem, len(stocks))
	for _, s := range stocks {
		byID[s.ID] = s
	}
	lookup := func(id int) (entity.StockItem, bool) {
		s, ok := byID[id]
		return s, ok
	}

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("COFFEE STOCK"))
	m.AddRows(stockHeaderRow())
	for _, r := range stockRows(stocks) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionRow("COFFEE ORDERS"))
	m.AddRows(orderHeaderRow())
	for _, r := range orderRows(orders, lookup) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Bean & Brews", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Coffee Shop Resource Management", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+generatedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
		}),
	))
}

func stockHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Coffee", 4, align.Left),
		h("Origin", 3, align.Left),
		h("Stock", 2, align.Center),
		h("Price / bag", 3, align.Right),
	)
}

func stockRows(stocks []entity.StockItem) []core.Row {
	result := make([]core.Row, 0, len(stocks))
	for _, s := range stocks {
		stockProps := props.Text{Size: 8, Align: align.Center, Top: 1}
		if s.Stock <= 0 {
			stockProps.Style = fontstyle.Bold
			stockProps.Color = colorRed
		}
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(s.Name, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(s.Origin, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(s.DisplayStock(), stockProps)),
			col.New(3).Add(text.New(formatMoney(s.Price), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
		))
	}
	return result
}

func orderHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("ID", 1, align.Center),
		h("Customer", 3, align.Left),
		h("Created At", 2, align.Left),
		h("Status", 2, align.Center),
		h("Items", 4, align.Left),
	)
}

func orderRows(orders []entity.Order, lookup entity.StockLookup) []core.Row {
	result := make([]core.Row, 0, len(orders))
	for _, o := range orders {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", o.OrderID), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(3).Add(text.New(o.CustomerName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(o.CreatedAt, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(string(o.Status), props.Text{
				Size: 8, Align: align.Center, Top: 1, Style: fontstyle.Bold,
			})),
			col.New(4).Add(text.New(o.ItemsList(lookup), props.Text{Size: 7.5, Top: 1})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney "Rp 50.000" con separador de miles por locale.
func formatMoney(d decimal.Decimal) string {
	return moneyPrinter.Sprintf("Rp %d", d.IntPart())
}
