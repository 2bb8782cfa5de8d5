package services

import "time"

// motivoDisplay maps the wire reason codes to their display vocabulary.
// Unknown codes render empty rather than leaking raw enum values.
var motivoDisplay = map[string]string{
	"FALLA_DE_FABRICA":     "Falla de fábrica",
	"ACUERDOS_COMERCIALES": "Acuerdos comerciales",
}

// buildReturnsSheets lays out the returns report. A returns sheet with no
// lines is meaningless, so an empty list is rejected up front.
func buildReturnsSheets(req ReportRequest, now time.Time) ([]*SheetPlan, string, error) {
	if len(req.Items) == 0 {
		return nil, "", errInvalid("la lista de devoluciones no puede estar vacía")
	}

	const (
		headerRow    = 8
		dataStartRow = 9
	)

	plan := NewSheetPlan("devoluciones", KindReturns)
	fecha := FormatDateDDMMYY(ParseDate(req.Form["fecha"], now))
	motivoRaw := req.FormValue("motivo")
	motivo := motivoDisplay[motivoRaw]

	writeMetaPair(plan, 1, "hoja de devolucion", "")
	writeMetaPair(plan, 2, "Cliente", req.FormValue("cliente"))
	writeMetaPair(plan, 3, "RUC o DNI", req.FormValue("documento_cliente"))
	writeMetaPair(plan, 4, "Fecha", fecha)
	writeMetaPair(plan, 5, "Motivo", motivo)

	headers := []string{
		"codigo", "cod_ean", "nombre", "cantidad", "peso",
		"observaciones", "subtotal peso",
	}
	for i, h := range headers {
		plan.HeaderCell(headerRow, i+1, h)
	}

	for i, it := range req.Items {
		row := dataStartRow + i
		plan.Cell(row, 1, it.Codigo)
		plan.Cell(row, 2, it.CodEAN)
		plan.Cell(row, 3, it.Nombre)
		plan.NumCell(row, 4, it.Cantidad, fmtInteger)
		plan.NumCell(row, 5, it.Peso, fmtDecimal)
		plan.Cell(row, 6, it.Observaciones)
		plan.NumCell(row, 7, LineWeight(it.Cantidad, it.Peso), fmtDecimal)
	}

	dataEnd := dataStartRow + len(req.Items) - 1
	totalsRow := dataEnd + 2
	plan.LabelCell(totalsRow, 1, "totales")
	plan.FormulaCell(totalsRow, 4, sumFormula(4, dataStartRow, dataEnd), fmtInteger)
	plan.FormulaCell(totalsRow, 5, sumProductFormula(4, 5, dataStartRow, dataEnd), fmtDecimal)

	filename := "devoluciones_" + safeName(NormalizeKey(motivo), "general") + "_" +
		safeName(req.FormValue("cliente"), "sin_nombre") + "_" + fecha + ".xlsx"
	return []*SheetPlan{plan}, filename, nil
}
