package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// ReportKind identifies one of the supported export sheets.
type ReportKind string

const (
	KindInventory ReportKind = "inventario"
	KindOrder     ReportKind = "pedido"
	KindReturns   ReportKind = "devoluciones"
	KindPrices    ReportKind = "precios"
	KindPlanner   ReportKind = "planificador"
)

// ParseReportKind maps the request "tipo" to a known kind. Unknown kinds
// are rejected before any generation starts.
func ParseReportKind(s string) (ReportKind, bool) {
	switch ReportKind(s) {
	case KindInventory, KindOrder, KindReturns, KindPrices, KindPlanner:
		return ReportKind(s), true
	}
	return "", false
}

// LineItem is one input row after normalization. Absent numeric attributes
// default to 0 and absent text attributes to empty strings; nothing here
// can fail.
type LineItem struct {
	Codigo        string
	CodEAN        string
	EAN14         string
	Nombre        string
	Linea         string
	Observaciones string

	Cantidad float64
	Peso     float64 // unit weight
	Precio   float64 // unit reference price
	CasePack float64 // units per shipping case

	// Precios holds the brand→price map for the comparison report; only
	// entries that parsed as numbers are present (a missing key is a
	// missing price, which is different from a price of 0).
	Precios map[string]float64

	// PrecioSugerido is the manual suggested-price override, when supplied.
	PrecioSugerido *float64
}

// NewLineItem builds a LineItem from a raw request row.
func NewLineItem(raw map[string]any) LineItem {
	it := LineItem{
		Codigo:        NormalizeDisplay(raw["codigo"]),
		CodEAN:        NormalizeDisplay(raw["cod_ean"]),
		EAN14:         NormalizeDisplay(raw["ean_14"]),
		Nombre:        NormalizeDisplay(raw["nombre"]),
		Linea:         NormalizeDisplay(raw["linea"]),
		Observaciones: NormalizeDisplay(firstOf(raw, "observaciones", "observacion")),
		Cantidad:      ParseAmount(raw["cantidad"]),
		Peso:          ParseAmount(raw["peso"]),
		Precio:        ParseAmount(raw["precio_referencial"]),
		CasePack:      ParseAmount(raw["cantidad_por_caja"]),
	}

	if m, ok := raw["precios"].(map[string]any); ok {
		it.Precios = make(map[string]float64, len(m))
		for brand, val := range m {
			if val == nil {
				continue
			}
			if s, isStr := val.(string); isStr && NormalizeDisplay(s) == "" {
				continue
			}
			it.Precios[NormalizeDisplay(brand)] = ParseAmount(val)
		}
	}

	if v, ok := raw["precio_sugerido"]; ok && v != nil {
		p := ParseAmount(v)
		it.PrecioSugerido = &p
	}

	return it
}

func firstOf(raw map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// UserInfo is the authenticated requester attached to the payload.
type UserInfo struct {
	Nombre string
	Correo string
}

// ReportRequest is the typed form of one export request after the handler
// has validated the envelope. Items are immutable once built.
type ReportRequest struct {
	Kind  ReportKind
	Form  map[string]any
	Items []LineItem
	User  UserInfo

	// Totals carries optional precomputed aggregate hints; they only stand
	// in for the zero literals when the line list is empty.
	Totals map[string]float64

	// Planner-only inputs.
	MontoTotal    float64
	FechasValidas []string
	RazonSocial   string
}

// FormValue returns the display-normalized form field, or "" when absent.
func (r ReportRequest) FormValue(key string) string {
	if r.Form == nil {
		return ""
	}
	return NormalizeDisplay(r.Form[key])
}

// ReportFile is a finished workbook (or PDF) ready to be sent as an
// attachment.
type ReportFile struct {
	Bytes    []byte
	Filename string
}

// ValidationError marks missing or invalid required input; handlers surface
// it as a 400 instead of a generic internal error.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func errInvalid(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// BuildReport dispatches to the matching report builder and returns the
// finished workbook. The request must already carry a known kind.
func BuildReport(req ReportRequest) (*ReportFile, error) {
	return buildReport(req, time.Now())
}

// buildReport is BuildReport with an injected clock so generation is
// reproducible in tests.
func buildReport(req ReportRequest, now time.Time) (*ReportFile, error) {
	var (
		plans    []*SheetPlan
		filename string
		err      error
	)

	switch req.Kind {
	case KindInventory:
		plans, filename, err = buildInventorySheets(req, now)
	case KindOrder:
		plans, filename, err = buildOrderSheets(req, now)
	case KindReturns:
		plans, filename, err = buildReturnsSheets(req, now)
	case KindPrices:
		plans, filename, err = buildPricesSheets(req, now)
	case KindPlanner:
		plans, filename, err = buildPlannerSheets(req, now)
	default:
		return nil, errInvalid("tipo de reporte desconocido: %q", req.Kind)
	}
	if err != nil {
		return nil, err
	}

	data, err := renderWorkbook(plans)
	if err != nil {
		return nil, err
	}
	return &ReportFile{Bytes: data, Filename: filename}, nil
}

// renderWorkbook owns sheet creation order and is the sole writer of the
// final byte stream. The first plan replaces the default sheet.
func renderWorkbook(plans []*SheetPlan) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, plan := range plans {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), plan.Name); err != nil {
				return nil, fmt.Errorf("set sheet name %q: %w", plan.Name, err)
			}
		} else {
			if _, err := f.NewSheet(plan.Name); err != nil {
				return nil, fmt.Errorf("create sheet %q: %w", plan.Name, err)
			}
		}
		if err := plan.render(f); err != nil {
			return nil, fmt.Errorf("render sheet %q: %w", plan.Name, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
