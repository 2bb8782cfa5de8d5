package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// cellClass selects which style family a recorded write belongs to.
type cellClass int

const (
	classValue  cellClass = iota // plain cell, optional number format
	classLabel                   // metadata label: kind fill, bold kind font
	classHeader                  // table header: label style plus centering
	classBanner                  // merged title banner: 16pt bold white on fill
)

// cellOp is one recorded write. The layout engine appends ops; render
// applies them in a single pass, which keeps layout rules testable without
// a spreadsheet engine.
type cellOp struct {
	Row, Col int
	Value    any
	Formula  string
	Class    cellClass
	NumFmt   string
}

type mergeOp struct {
	FromRow, FromCol, ToRow, ToCol int
}

type barChart struct {
	Anchor     string
	Title      string
	SeriesName string
	Categories string
	Values     string
	Color      string
	XTitle     string
	YTitle     string
}

// SheetPlan accumulates the full layout of one sheet before anything
// touches excelize.
type SheetPlan struct {
	Name string

	pal         palette
	bannerFill  string
	ops         []cellOp
	merges      []mergeOp
	chart       *barChart
	fixedWidths map[int]float64
}

// NewSheetPlan starts an empty plan styled with the kind's color identity.
func NewSheetPlan(name string, kind ReportKind) *SheetPlan {
	return &SheetPlan{
		Name:        name,
		pal:         kindPalette(kind),
		fixedWidths: map[int]float64{},
	}
}

// Cell records a plain value write.
func (p *SheetPlan) Cell(row, col int, v any) {
	p.ops = append(p.ops, cellOp{Row: row, Col: col, Value: v})
}

// NumCell records a numeric value with a number format.
func (p *SheetPlan) NumCell(row, col int, v float64, numFmt string) {
	p.ops = append(p.ops, cellOp{Row: row, Col: col, Value: v, NumFmt: numFmt})
}

// LabelCell records a metadata label styled with the kind fill.
func (p *SheetPlan) LabelCell(row, col int, label string) {
	p.ops = append(p.ops, cellOp{Row: row, Col: col, Value: label, Class: classLabel})
}

// HeaderCell records a centered table header cell.
func (p *SheetPlan) HeaderCell(row, col int, label string) {
	p.ops = append(p.ops, cellOp{Row: row, Col: col, Value: label, Class: classHeader})
}

// FormulaCell records a live formula (written without the leading "=").
func (p *SheetPlan) FormulaCell(row, col int, formula, numFmt string) {
	p.ops = append(p.ops, cellOp{Row: row, Col: col, Formula: formula, NumFmt: numFmt})
}

// Banner records a merged title band across [colFrom, colTo] filled with
// the given color.
func (p *SheetPlan) Banner(row, colFrom, colTo int, text, fill string) {
	p.bannerFill = fill
	p.ops = append(p.ops, cellOp{Row: row, Col: colFrom, Value: text, Class: classBanner})
	p.merges = append(p.merges, mergeOp{FromRow: row, FromCol: colFrom, ToRow: row, ToCol: colTo})
}

// FixedColWidth pins a column width, exempting it from autosizing.
func (p *SheetPlan) FixedColWidth(col int, width float64) {
	p.fixedWidths[col] = width
}

// AddBarChart embeds a single-series bar chart anchored at the given cell.
func (p *SheetPlan) AddBarChart(anchor, title, seriesName, categories, values, color, xTitle, yTitle string) {
	p.chart = &barChart{
		Anchor:     anchor,
		Title:      title,
		SeriesName: seriesName,
		Categories: categories,
		Values:     values,
		Color:      color,
		XTitle:     xTitle,
		YTitle:     yTitle,
	}
}

// render applies every recorded op to the (already created) sheet, merges,
// embeds the chart, and sizes columns. Styles are created lazily and cached
// per class/format pair.
func (p *SheetPlan) render(f *excelize.File) error {
	type styleKey struct {
		class  cellClass
		numFmt string
	}
	styles := map[styleKey]int{}

	styleFor := func(class cellClass, numFmt string) (int, error) {
		key := styleKey{class, numFmt}
		if id, ok := styles[key]; ok {
			return id, nil
		}
		var def excelize.Style
		switch class {
		case classValue:
			if numFmt == "" {
				return 0, nil
			}
			def = excelize.Style{CustomNumFmt: &numFmt}
		case classLabel:
			def = excelize.Style{
				Font: &excelize.Font{Bold: true, Color: p.pal.Font},
				Fill: excelize.Fill{Type: "pattern", Color: []string{p.pal.Fill}, Pattern: 1},
			}
		case classHeader:
			def = excelize.Style{
				Font: &excelize.Font{Bold: true, Color: p.pal.Font},
				Fill: excelize.Fill{Type: "pattern", Color: []string{p.pal.Fill}, Pattern: 1},
				Alignment: &excelize.Alignment{
					Horizontal: "center",
					Vertical:   "center",
				},
			}
		case classBanner:
			def = excelize.Style{
				Font: &excelize.Font{Bold: true, Size: 16, Color: "FFFFFF"},
				Fill: excelize.Fill{Type: "pattern", Color: []string{p.bannerFill}, Pattern: 1},
				Alignment: &excelize.Alignment{
					Horizontal: "center",
					Vertical:   "center",
				},
			}
		}
		id, err := f.NewStyle(&def)
		if err != nil {
			return 0, fmt.Errorf("create style: %w", err)
		}
		styles[key] = id
		return id, nil
	}

	for _, op := range p.ops {
		cell, err := excelize.CoordinatesToCellName(op.Col, op.Row)
		if err != nil {
			return fmt.Errorf("cell %d,%d: %w", op.Col, op.Row, err)
		}
		if op.Formula != "" {
			if err := f.SetCellFormula(p.Name, cell, op.Formula); err != nil {
				return fmt.Errorf("set formula %s: %w", cell, err)
			}
		} else if err := f.SetCellValue(p.Name, cell, op.Value); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
		styleID, err := styleFor(op.Class, op.NumFmt)
		if err != nil {
			return err
		}
		if styleID != 0 {
			if err := f.SetCellStyle(p.Name, cell, cell, styleID); err != nil {
				return fmt.Errorf("style cell %s: %w", cell, err)
			}
		}
	}

	for _, m := range p.merges {
		from, err := excelize.CoordinatesToCellName(m.FromCol, m.FromRow)
		if err != nil {
			return err
		}
		to, err := excelize.CoordinatesToCellName(m.ToCol, m.ToRow)
		if err != nil {
			return err
		}
		if err := f.MergeCell(p.Name, from, to); err != nil {
			return fmt.Errorf("merge %s:%s: %w", from, to, err)
		}
	}

	if p.chart != nil {
		if err := p.renderChart(f); err != nil {
			return err
		}
	}

	return p.applyColumnWidths(f)
}

func (p *SheetPlan) renderChart(f *excelize.File) error {
	c := p.chart
	chart := excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       c.SeriesName,
			Categories: c.Categories,
			Values:     c.Values,
			Fill:       excelize.Fill{Type: "pattern", Color: []string{c.Color}, Pattern: 1},
		}},
		Title:  []excelize.RichTextRun{{Text: c.Title}},
		Legend: excelize.ChartLegend{Position: "none"},
		XAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: c.XTitle}}},
		YAxis:  excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: c.YTitle}}},
	}
	if err := f.AddChart(p.Name, c.Anchor, &chart); err != nil {
		return fmt.Errorf("add chart: %w", err)
	}
	return nil
}

// Column sizing constants: padding on every column, extra weight for bold
// header/title cells, and the clamp bounds.
const (
	colPadding     = 2.0
	boldColWeight  = 2.0
	minColumnWidth = 8.0
	maxColumnWidth = 55.0
)

// columnWidths derives widths from the recorded writes: longest rendered
// value (a formula counts as its own text), plus padding, bold cells
// weighted slightly wider, clamped to [min, max]. Exported via render.
func (p *SheetPlan) columnWidths() map[int]float64 {
	widths := map[int]float64{}
	for _, op := range p.ops {
		text := op.Formula
		if text == "" {
			text = fmt.Sprint(op.Value)
		}
		w := float64(len([]rune(text))) + colPadding
		if op.Class != classValue {
			w += boldColWeight
		}
		if w < minColumnWidth {
			w = minColumnWidth
		}
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		if w > widths[op.Col] {
			widths[op.Col] = w
		}
	}
	for col, w := range p.fixedWidths {
		widths[col] = w
	}
	return widths
}

func (p *SheetPlan) applyColumnWidths(f *excelize.File) error {
	for col, w := range p.columnWidths() {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(p.Name, name, name, w); err != nil {
			return fmt.Errorf("set col width %s: %w", name, err)
		}
	}
	return nil
}
