package services

import (
	"fmt"
	"time"
)

// plannerBannerFill is the dashboard title band color (the order blue).
const plannerBannerFill = "B4C6E7"

// buildPlannerSheets lays out the payment schedule workbook: a dashboard
// sheet with the monthly summary and an embedded bar chart, plus a detail
// sheet listing every installment.
func buildPlannerSheets(req ReportRequest, now time.Time) ([]*SheetPlan, string, error) {
	if req.MontoTotal <= 0 {
		return nil, "", errInvalid("montoTotal debe ser mayor que cero")
	}
	if len(req.FechasValidas) == 0 {
		return nil, "", errInvalid("fechasValidas no puede estar vacío")
	}

	dates := SortDueDates(req.FechasValidas)
	amounts := DistributeAmount(req.MontoTotal, len(dates))
	months := SummarizeByMonth(dates, amounts)

	const (
		infoStartRow   = 3
		summaryHeadRow = 12
		summaryDataRow = 13
	)

	dash := NewSheetPlan("Reporte Dashboard", KindPlanner)
	dash.Banner(1, 1, 3, "DISTRIBUCION DE MONTOS POR FECHA", plannerBannerFill)

	info := []struct {
		label string
		value any
	}{
		{"Cód. Cliente:", req.FormValue("codigoCliente")},
		{"RUC:", req.FormValue("ruc")},
		{"Cliente:", NormalizeDisplay(req.RazonSocial)},
		{"Línea:", req.FormValue("linea")},
		{"Cód. Pedido:", req.FormValue("pedido")},
		{"Monto Total:", req.MontoTotal},
		{"Total Letras:", len(dates)},
	}
	for i, pair := range info {
		row := infoStartRow + i
		dash.Cell(row, 1, pair.label)
		switch v := pair.value.(type) {
		case float64:
			dash.NumCell(row, 2, v, fmtDecimal)
		case int:
			dash.NumCell(row, 2, float64(v), fmtInteger)
		default:
			dash.Cell(row, 2, v)
		}
	}

	dash.HeaderCell(summaryHeadRow, 1, "Mes")
	dash.HeaderCell(summaryHeadRow, 2, "Monto (S/)")
	dash.HeaderCell(summaryHeadRow, 3, "Porcentaje")
	for i, m := range months {
		row := summaryDataRow + i
		dash.Cell(row, 1, m.Key)
		dash.NumCell(row, 2, m.Amount, fmtDecimal)
		dash.NumCell(row, 3, m.Amount/req.MontoTotal, fmtPercent)
	}

	// No summary rows means nothing to chart. Anchoring the series over an
	// empty range would invert it, so skip the chart entirely.
	if len(months) > 0 {
		lastSummaryRow := summaryHeadRow + len(months)
		dash.AddBarChart(
			"E3",
			"Resumen de Montos por Mes",
			fmt.Sprintf("'Reporte Dashboard'!$B$%d", summaryHeadRow),
			fmt.Sprintf("'Reporte Dashboard'!$A$%d:$A$%d", summaryDataRow, lastSummaryRow),
			fmt.Sprintf("'Reporte Dashboard'!$B$%d:$B$%d", summaryDataRow, lastSummaryRow),
			chartColor(req.FormValue("linea_planificador_color")),
			"Mes",
			"Monto (S/)",
		)
	}

	detail := NewSheetPlan("Detalle de Pagos", KindPlanner)
	detail.HeaderCell(1, 1, "N°")
	detail.HeaderCell(1, 2, "Fecha de Vencimiento")
	detail.HeaderCell(1, 3, "Monto (S/)")
	for i, d := range dates {
		row := 2 + i
		detail.NumCell(row, 1, float64(i+1), fmtInteger)
		detail.Cell(row, 2, NormalizeDisplay(d))
		detail.NumCell(row, 3, amounts[i], fmtDecimal)
	}
	for col := 1; col <= 3; col++ {
		detail.FixedColWidth(col, 20)
	}

	fecha := FormatDateDDMMYY(now)
	if t, err := time.Parse(plannerDateLayout, NormalizeDisplay(dates[0])); err == nil {
		fecha = FormatDateDDMMYY(t)
	}
	filename := "planificador_" + safeName(req.RazonSocial, "sin_cliente") + "_" + fecha + ".xlsx"
	return []*SheetPlan{dash, detail}, filename, nil
}
