package services

import "testing"

func TestBuildOrderExport(t *testing.T) {
	req := ReportRequest{
		Kind: KindOrder,
		Form: map[string]any{
			"cliente":           "Minimarket Sol",
			"documentType":      "ruc",
			"documento_cliente": "20100047218",
			"codigo_cliente":    "CL-88",
			"fecha":             "2025-03-09",
		},
		User: UserInfo{Nombre: "José Paredes"},
		Items: []LineItem{
			{Codigo: "A1", Nombre: "Galletas", Cantidad: 10, CasePack: 4, Precio: 2, Peso: 0.5},
			{Codigo: "A2", Nombre: "Chocolates", Cantidad: 3, CasePack: 0, Precio: 10, Peso: 0.2},
		},
	}

	exp := buildOrderExport(req, testNow)

	if exp.Documento != "RUC: 20100047218" {
		t.Errorf("Documento = %q, want RUC: 20100047218", exp.Documento)
	}
	if exp.Sucursal != "principal" {
		t.Errorf("Sucursal = %q, want the principal default", exp.Sucursal)
	}
	if exp.Responsable != "José Paredes" {
		t.Errorf("Responsable = %q", exp.Responsable)
	}
	if len(exp.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(exp.Rows))
	}
	if !floatClose(exp.Rows[0].Cajas, 2.5) {
		t.Errorf("row 0 cajas = %v, want 2.5", exp.Rows[0].Cajas)
	}
	if !floatClose(exp.Rows[1].Cajas, 0) {
		t.Errorf("row 1 cajas = %v, want 0 for zero case size", exp.Rows[1].Cajas)
	}
	if !floatClose(exp.TotalUnidades, 13) {
		t.Errorf("TotalUnidades = %v, want 13", exp.TotalUnidades)
	}
	if !floatClose(exp.TotalValor, 50) {
		t.Errorf("TotalValor = %v, want 50", exp.TotalValor)
	}
	if !floatClose(exp.TotalPeso, 5.6) {
		t.Errorf("TotalPeso = %v, want 5.6", exp.TotalPeso)
	}
}

func TestBuildOrderExport_DocumentWithoutType(t *testing.T) {
	req := ReportRequest{
		Kind: KindOrder,
		Form: map[string]any{"documento_cliente": "44556677"},
	}
	exp := buildOrderExport(req, testNow)
	if exp.Documento != "44556677" {
		t.Errorf("Documento = %q, want the bare number", exp.Documento)
	}
}

func TestBuildOrderReport(t *testing.T) {
	req := ReportRequest{
		Kind: KindOrder,
		Form: map[string]any{
			"cliente": "Minimarket Sol",
			"fecha":   "2025-03-09",
		},
		User: UserInfo{Nombre: "José Paredes"},
		Items: []LineItem{
			{Codigo: "A1", Nombre: "Galletas", Cantidad: 10, CasePack: 4, Precio: 2, Peso: 0.5},
			{Codigo: "A2", Nombre: "Chocolates", Cantidad: 3, CasePack: 3, Precio: 10, Peso: 0.2},
		},
	}

	f, filename := buildWorkbook(t, req)
	const sheet = "pedido"

	if got := cellValue(t, f, sheet, "A1"); got != "hoja de pedido" {
		t.Errorf("A1 = %q, want hoja de pedido", got)
	}
	if got := cellValue(t, f, sheet, "B7"); got != "José Paredes" {
		t.Errorf("B7 = %q, want the responsable", got)
	}
	if got := cellValue(t, f, sheet, "A9"); got != "Código" {
		t.Errorf("header A9 = %q, want Código", got)
	}
	if got := cellValue(t, f, sheet, "E9"); got != "Cantidad de unidades a pedir" {
		t.Errorf("header E9 = %q", got)
	}
	if got := cellValue(t, f, sheet, "F10"); got != "2.5" {
		t.Errorf("F10 = %q, want 2.5 cases", got)
	}

	// The totals row follows the data with no separator and carries live
	// formulas over the data range.
	if got := cellValue(t, f, sheet, "A12"); got != "TOTALES GENERALES:" {
		t.Errorf("A12 = %q, want TOTALES GENERALES:", got)
	}
	for ref, want := range map[string]string{
		"E12": "SUM(E10:E11)",
		"F12": "SUM(F10:F11)",
		"H12": "SUM(H10:H11)",
		"J12": "SUM(J10:J11)",
	} {
		formula, err := f.GetCellFormula(sheet, ref)
		if err != nil {
			t.Fatalf("GetCellFormula(%s) error = %v", ref, err)
		}
		if formula != want {
			t.Errorf("%s formula = %q, want %q", ref, formula, want)
		}
	}

	if filename != "pedido_Minimarket_Sol_09-03-25.xlsx" {
		t.Errorf("filename = %q", filename)
	}
}

func TestBuildOrderReport_EmptyListWritesZeroLiterals(t *testing.T) {
	req := ReportRequest{
		Kind: KindOrder,
		Form: map[string]any{"fecha": "2025-03-09"},
	}

	f, _ := buildWorkbook(t, req)
	const sheet = "pedido"

	if got := cellValue(t, f, sheet, "A10"); got != "TOTALES GENERALES:" {
		t.Errorf("A10 = %q, want TOTALES GENERALES:", got)
	}
	if formula, _ := f.GetCellFormula(sheet, "E10"); formula != "" {
		t.Errorf("E10 formula = %q, want a literal on empty data", formula)
	}
	if got := cellValue(t, f, sheet, "E10"); got != "0" {
		t.Errorf("E10 = %q, want 0", got)
	}
}
