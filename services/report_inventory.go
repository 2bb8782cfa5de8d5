package services

import "time"

// buildInventorySheets lays out the inventory count report: metadata block,
// nine-column table with derived case/weight/value columns, and a
// precomputed totals row two rows below the data.
func buildInventorySheets(req ReportRequest, now time.Time) ([]*SheetPlan, string, error) {
	const (
		headerRow    = 7
		dataStartRow = 8
	)

	plan := NewSheetPlan("inventario", KindInventory)
	fecha := FormatDateDDMMYY(ParseDate(req.Form["fecha"], now))

	writeMetaPair(plan, 1, "inventario", "")
	writeMetaPair(plan, 2, "Cliente", req.FormValue("cliente"))
	writeMetaPair(plan, 3, "RUC o DNI", req.FormValue("documento_cliente"))
	writeMetaPair(plan, 4, "Colaborador", req.FormValue("colaborador_personal"))
	writeMetaPair(plan, 5, "Fecha", fecha)

	headers := []string{
		"codigo", "cod_ean", "nombre", "cantidad", "total cajas",
		"peso total", "valor total", "linea", "observaciones",
	}
	for i, h := range headers {
		plan.HeaderCell(headerRow, i+1, h)
	}

	var sumCantidad, sumCajas, sumPeso, sumValor float64
	for i, it := range req.Items {
		row := dataStartRow + i
		cajas := CaseCount(it.Cantidad, it.CasePack)
		peso := LineWeight(it.Cantidad, it.Peso)
		valor := LineValue(it.Cantidad, it.Precio)

		plan.Cell(row, 1, it.Codigo)
		plan.Cell(row, 2, it.CodEAN)
		plan.Cell(row, 3, it.Nombre)
		plan.NumCell(row, 4, it.Cantidad, fmtInteger)
		plan.NumCell(row, 5, cajas, fmtCases)
		plan.NumCell(row, 6, peso, fmtDecimal)
		plan.NumCell(row, 7, valor, fmtCurrency)
		plan.Cell(row, 8, it.Linea)
		plan.Cell(row, 9, it.Observaciones)

		sumCantidad += it.Cantidad
		sumCajas += cajas
		sumPeso += peso
		sumValor += valor
	}

	if len(req.Items) == 0 {
		sumCantidad = req.Totals["cantidad"]
		sumCajas = req.Totals["cajas"]
		sumPeso = req.Totals["peso"]
		sumValor = req.Totals["valor"]
	}

	totalsRow := dataStartRow + len(req.Items) + 1
	plan.LabelCell(totalsRow, 1, "totales")
	plan.NumCell(totalsRow, 4, round2(sumCantidad), fmtInteger)
	plan.NumCell(totalsRow, 5, round2(sumCajas), fmtCases)
	plan.NumCell(totalsRow, 6, round2(sumPeso), fmtDecimal)
	plan.NumCell(totalsRow, 7, round2(sumValor), fmtCurrency)
	plan.LabelCell(totalsRow, 8, "Total Líneas Únicas:")
	plan.NumCell(totalsRow, 9, float64(UniqueLineCount(req.Items)), fmtInteger)

	filename := "inventario_" + safeName(req.FormValue("cliente"), "sin_cliente") + "_" + fecha + ".xlsx"
	return []*SheetPlan{plan}, filename, nil
}

// writeMetaPair writes one metadata row: styled label in column 1, plain
// value in column 2 when non-empty.
func writeMetaPair(p *SheetPlan, row int, label, value string) {
	p.LabelCell(row, 1, label)
	if value != "" {
		p.Cell(row, 2, value)
	}
}
