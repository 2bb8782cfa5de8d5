package services

import "time"

// OrderRow is one computed line of the order sheet, shared by the xlsx and
// PDF renditions.
type OrderRow struct {
	Codigo        string
	CodEAN        string
	EAN14         string
	Nombre        string
	Cantidad      float64
	Cajas         float64
	Precio        float64
	Valor         float64
	Linea         string
	Peso          float64
	Observaciones string
}

// OrderExport is the full computed order report before any rendering.
type OrderExport struct {
	Cliente     string
	Documento   string
	CodCliente  string
	Sucursal    string
	Fecha       string
	Responsable string

	Rows []OrderRow

	TotalUnidades float64
	TotalCajas    float64
	TotalValor    float64
	TotalPeso     float64
}

// buildOrderExport computes the order rows and aggregates from the request.
// The document display joins type and number ("RUC: 20100047218") only when
// both are present.
func buildOrderExport(req ReportRequest, now time.Time) OrderExport {
	docType := NormalizeDisplay(req.Form["documentType"])
	docNum := req.FormValue("documento_cliente")
	doc := docNum
	if docType != "" && docNum != "" {
		doc = upperASCII(docType) + ": " + docNum
	}

	sucursal := req.FormValue("sucursal")
	if sucursal == "" {
		sucursal = "principal"
	}

	exp := OrderExport{
		Cliente:     req.FormValue("cliente"),
		Documento:   doc,
		CodCliente:  req.FormValue("codigo_cliente"),
		Sucursal:    sucursal,
		Fecha:       FormatDateDDMMYY(ParseDate(req.Form["fecha"], now)),
		Responsable: NormalizeDisplay(req.User.Nombre),
	}

	for _, it := range req.Items {
		row := OrderRow{
			Codigo:        it.Codigo,
			CodEAN:        it.CodEAN,
			EAN14:         it.EAN14,
			Nombre:        it.Nombre,
			Cantidad:      it.Cantidad,
			Cajas:         CaseCount(it.Cantidad, it.CasePack),
			Precio:        it.Precio,
			Valor:         LineValue(it.Cantidad, it.Precio),
			Linea:         it.Linea,
			Peso:          LineWeight(it.Cantidad, it.Peso),
			Observaciones: it.Observaciones,
		}
		exp.Rows = append(exp.Rows, row)
		exp.TotalUnidades += row.Cantidad
		exp.TotalCajas += row.Cajas
		exp.TotalValor += row.Valor
		exp.TotalPeso += row.Peso
	}

	if len(exp.Rows) == 0 {
		exp.TotalUnidades = req.Totals["cantidad"]
		exp.TotalCajas = req.Totals["cajas"]
		exp.TotalValor = req.Totals["valor"]
		exp.TotalPeso = req.Totals["peso"]
	}

	exp.TotalUnidades = round2(exp.TotalUnidades)
	exp.TotalCajas = round2(exp.TotalCajas)
	exp.TotalValor = round2(exp.TotalValor)
	exp.TotalPeso = round2(exp.TotalPeso)
	return exp
}

// buildOrderSheets lays out the order sheet: seven metadata rows, the
// eleven-column table, and a live-formula totals row written directly under
// the last data row.
func buildOrderSheets(req ReportRequest, now time.Time) ([]*SheetPlan, string, error) {
	const (
		headerRow    = 9
		dataStartRow = 10
	)

	exp := buildOrderExport(req, now)
	plan := NewSheetPlan("pedido", KindOrder)

	writeMetaPair(plan, 1, "hoja de pedido", "")
	writeMetaPair(plan, 2, "Cliente", exp.Cliente)
	writeMetaPair(plan, 3, "Documento", exp.Documento)
	writeMetaPair(plan, 4, "Código Cliente", exp.CodCliente)
	writeMetaPair(plan, 5, "Sucursal", exp.Sucursal)
	writeMetaPair(plan, 6, "Fecha", exp.Fecha)
	writeMetaPair(plan, 7, "Responsable", exp.Responsable)

	headers := []string{
		"Código", "EAN", "EAN14", "Nombre", "Cantidad de unidades a pedir",
		"Total de cajas a pedir", "Precio referencial", "Valor total del pedido",
		"Línea de producto", "Peso total del pedido", "Observaciones",
	}
	for i, h := range headers {
		plan.HeaderCell(headerRow, i+1, h)
	}

	for i, row := range exp.Rows {
		r := dataStartRow + i
		plan.Cell(r, 1, row.Codigo)
		plan.Cell(r, 2, row.CodEAN)
		plan.Cell(r, 3, row.EAN14)
		plan.Cell(r, 4, row.Nombre)
		plan.NumCell(r, 5, row.Cantidad, fmtInteger)
		plan.NumCell(r, 6, row.Cajas, fmtCases)
		plan.NumCell(r, 7, row.Precio, fmtCurrency)
		plan.NumCell(r, 8, row.Valor, fmtCurrency)
		plan.Cell(r, 9, row.Linea)
		plan.NumCell(r, 10, row.Peso, fmtDecimal)
		plan.Cell(r, 11, row.Observaciones)
	}

	totalsRow := dataStartRow + len(exp.Rows)
	plan.LabelCell(totalsRow, 1, "TOTALES GENERALES:")
	if len(exp.Rows) > 0 {
		dataEnd := totalsRow - 1
		plan.FormulaCell(totalsRow, 5, sumFormula(5, dataStartRow, dataEnd), fmtInteger)
		plan.FormulaCell(totalsRow, 6, sumFormula(6, dataStartRow, dataEnd), fmtCases)
		plan.FormulaCell(totalsRow, 8, sumFormula(8, dataStartRow, dataEnd), fmtCurrency)
		plan.FormulaCell(totalsRow, 10, sumFormula(10, dataStartRow, dataEnd), fmtDecimal)
	} else {
		plan.NumCell(totalsRow, 5, exp.TotalUnidades, fmtInteger)
		plan.NumCell(totalsRow, 6, exp.TotalCajas, fmtCases)
		plan.NumCell(totalsRow, 8, exp.TotalValor, fmtCurrency)
		plan.NumCell(totalsRow, 10, exp.TotalPeso, fmtDecimal)
	}

	filename := "pedido_" + safeName(exp.Cliente, "sin_cliente") + "_" + exp.Fecha + ".xlsx"
	return []*SheetPlan{plan}, filename, nil
}

// upperASCII uppercases the ASCII letters only; document type codes are
// plain ASCII ("ruc", "dni").
func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
