package services

import (
	"fmt"
	"math"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// BuildOrderPDF renders the order report as a PDF attachment. Only the
// order kind has a PDF rendition.
func BuildOrderPDF(req ReportRequest) (*ReportFile, error) {
	return buildOrderPDF(req, time.Now())
}

func buildOrderPDF(req ReportRequest, now time.Time) (*ReportFile, error) {
	if req.Kind != KindOrder {
		return nil, errInvalid("la exportación PDF solo está disponible para pedidos")
	}

	exp := buildOrderExport(req, now)
	data, err := GenerateOrderPDF(exp)
	if err != nil {
		return nil, err
	}
	filename := "pedido_" + safeName(exp.Cliente, "sin_cliente") + "_" + exp.Fecha + ".pdf"
	return &ReportFile{Bytes: data, Filename: filename}, nil
}

// GenerateOrderPDF creates a PDF document from a computed order export
// using maroto/v2. It returns the raw PDF bytes or an error.
func GenerateOrderPDF(exp OrderExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addOrderHeader(m, exp)
	addOrderTableHeader(m)
	for _, r := range exp.Rows {
		addOrderTableRow(m, r)
	}
	addOrderSummary(m, exp)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addOrderHeader adds the title block: client, document, date and the
// responsible collaborator.
func addOrderHeader(m core.Maroto, exp OrderExport) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("HOJA DE PEDIDO", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	metaText := props.Text{
		Size:  9,
		Align: align.Left,
		Color: &props.Color{Red: 80, Green: 80, Blue: 80},
	}
	metaRight := metaText
	metaRight.Align = align.Right

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Cliente: %s", exp.Cliente), metaText),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Fecha: %s", exp.Fecha), metaRight),
			),
		),
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Documento: %s", exp.Documento), metaText),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Sucursal: %s", exp.Sucursal), metaRight),
			),
		),
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Código Cliente: %s", exp.CodCliente), metaText),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Responsable: %s", exp.Responsable), metaRight),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addOrderTableHeader adds the column header row for the order table.
func addOrderTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 31, Green: 56, Blue: 100}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(
				text.New("Código", headerText),
			).WithStyle(&headerCell),
			col.New(4).Add(
				text.New("Nombre", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Cantidad", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Cajas", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Precio", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Valor total", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Línea", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addOrderTableRow adds a single order line to the table.
func addOrderTableRow(m core.Maroto, r OrderRow) {
	baseText := props.Text{
		Size:  7,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(r.Codigo, baseText)),
			col.New(4).Add(text.New(r.Nombre, leftText)),
			col.New(1).Add(text.New(formatQty(r.Cantidad), rightText)),
			col.New(1).Add(text.New(formatQty(r.Cajas), rightText)),
			col.New(2).Add(text.New(FormatPEN(r.Precio), rightText)),
			col.New(2).Add(text.New(FormatPEN(r.Valor), rightText)),
			col.New(1).Add(text.New(r.Linea, baseText)),
		),
	)
}

// addOrderSummary adds the totals band at the bottom of the PDF.
func addOrderSummary(m core.Maroto, exp OrderExport) {
	// Spacer before summary
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	addTotal := func(label, value string) {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(value, labelStyle),
				).WithStyle(summaryCell),
			),
		)
	}

	addTotal("Total de unidades", formatQty(exp.TotalUnidades))
	addTotal("Total de cajas", formatQty(exp.TotalCajas))
	addTotal("Valor total del pedido", FormatPEN(exp.TotalValor))
	addTotal("Peso total del pedido", fmt.Sprintf("%.2f kg", exp.TotalPeso))
}

// formatQty returns a string representation of the quantity value.
// Whole numbers are formatted without decimals; fractional values get 2
// decimal places.
func formatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
