package services

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateOrderPDF(t *testing.T) {
	exp := OrderExport{
		Cliente:     "Minimarket Sol",
		Documento:   "RUC: 20100047218",
		CodCliente:  "CL-88",
		Sucursal:    "principal",
		Fecha:       "09-03-25",
		Responsable: "José Paredes",
		Rows: []OrderRow{
			{Codigo: "A1", Nombre: "Galletas", Cantidad: 10, Cajas: 2.5, Precio: 2, Valor: 20, Linea: "Snacks"},
			{Codigo: "A2", Nombre: "Chocolates", Cantidad: 3, Cajas: 1, Precio: 10, Valor: 30, Linea: "Dulces"},
		},
		TotalUnidades: 13,
		TotalCajas:    3.5,
		TotalValor:    50,
		TotalPeso:     5.6,
	}

	result, err := GenerateOrderPDF(exp)
	if err != nil {
		t.Fatalf("GenerateOrderPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateOrderPDF() returned empty bytes")
	}
	if !bytes.HasPrefix(result, []byte("%PDF")) {
		t.Errorf("result does not start with the PDF magic, got %q", result[:4])
	}
}

func TestGenerateOrderPDF_EmptyRows(t *testing.T) {
	result, err := GenerateOrderPDF(OrderExport{Cliente: "Sin Líneas", Fecha: "09-03-25"})
	if err != nil {
		t.Fatalf("GenerateOrderPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateOrderPDF() returned empty bytes")
	}
}

func TestBuildOrderPDF(t *testing.T) {
	req := ReportRequest{
		Kind: KindOrder,
		Form: map[string]any{"cliente": "Minimarket Sol", "fecha": "2025-03-09"},
		Items: []LineItem{
			{Codigo: "A1", Nombre: "Galletas", Cantidad: 10, CasePack: 4, Precio: 2, Peso: 0.5},
		},
	}

	file, err := buildOrderPDF(req, testNow)
	if err != nil {
		t.Fatalf("buildOrderPDF() error = %v", err)
	}
	if file.Filename != "pedido_Minimarket_Sol_09-03-25.pdf" {
		t.Errorf("filename = %q", file.Filename)
	}
	if !bytes.HasPrefix(file.Bytes, []byte("%PDF")) {
		t.Error("result is not a PDF")
	}
}

func TestBuildOrderPDF_RejectsOtherKinds(t *testing.T) {
	req := ReportRequest{Kind: KindInventory, Form: map[string]any{}}
	_, err := buildOrderPDF(req, testNow)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want a *ValidationError", err)
	}
}
