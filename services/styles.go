package services

// palette is the color identity of one report kind, applied to its title
// and header cells.
type palette struct {
	Fill string // header background
	Font string // header text
}

// Fixed compatibility contract: returns=red, order=blue, inventory=green,
// price comparison=amber. Anything unrecognized renders neutral gray.
var styleConfig = map[ReportKind]palette{
	KindReturns:   {Fill: "FFC7CE", Font: "9C0006"},
	KindOrder:     {Fill: "B4C6E7", Font: "1F3864"},
	KindInventory: {Fill: "C6E0B4", Font: "385723"},
	KindPrices:    {Fill: "FFD966", Font: "8D5F00"},
}

var defaultPalette = palette{Fill: "D9D9D9", Font: "000000"}

func kindPalette(k ReportKind) palette {
	if p, ok := styleConfig[k]; ok {
		return p
	}
	return defaultPalette
}

// chartColors maps the planner line color names to series fills.
var chartColors = map[string]string{
	"rojo":  "FF0000",
	"azul":  "0070C0",
	"verde": "00B050",
}

const chartColorDefault = "4472C4"

func chartColor(name string) string {
	if c, ok := chartColors[NormalizeKey(name)]; ok {
		return c
	}
	return chartColorDefault
}

// Number formats shared across the report builders.
const (
	fmtInteger  = "0"
	fmtCases    = "0.00"
	fmtDecimal  = "#,##0.00"
	fmtCurrency = `"S/." #,##0.00`
	fmtPercent  = "0.00%"
)
