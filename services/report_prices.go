package services

import (
	"fmt"
	"strings"
	"time"
)

// brandCount is the fixed number of comparison columns; marca1 is the base.
const brandCount = 5

const (
	priceHeaderRow    = 11
	priceDataStartRow = 12

	colBasePrice = 4  // columns 4..8 hold the five brand prices
	colDiffStart = 9  // Dif./% pairs for competitors 2..5
	colMax       = 17 // Precio MAX
	colMin       = 18
	colMaxPct    = 19
	colMinPct    = 20
	colMean      = 21 // Promedio
	colStdev     = 22
	colCV        = 23
	colTier      = 24
	colRank      = 25
	colCheaper   = 26
	colCostlier  = 27
	colSuggested = 28
)

// buildPricesSheets lays out the five-brand price comparison sheet with the
// full live-formula analytics block. Statistics are mirrored in process to
// gate which formulas each row gets: dispersion needs at least two numeric
// prices, rank and cheaper/dearer counts need a numeric base price.
func buildPricesSheets(req ReportRequest, now time.Time) ([]*SheetPlan, string, error) {
	plan := NewSheetPlan("comparacion", KindPrices)
	fecha := FormatDateDDMMYY(ParseDate(req.Form["fecha"], now))
	colaborador := req.FormValue("colaborador")

	// Entered brand names keyed exactly as the per-item price maps are;
	// blank slots become display placeholders that never match a price.
	entered := make([]string, brandCount)
	display := make([]string, brandCount)
	for i := 0; i < brandCount; i++ {
		entered[i] = req.FormValue(fmt.Sprintf("marca%d", i+1))
		if entered[i] != "" {
			display[i] = entered[i]
		} else {
			display[i] = fmt.Sprintf("Marca %d", i+1)
		}
	}
	base := display[0]

	writeMetaPair(plan, 1, "comparacion", "")
	writeMetaPair(plan, 2, "Colaborador", colaborador)
	for i := 0; i < brandCount; i++ {
		writeMetaPair(plan, 3+i, fmt.Sprintf("Marca %d", i+1), display[i])
	}
	writeMetaPair(plan, 8, "Fecha", fecha)
	plan.LabelCell(9, 1, "Total Productos:")
	plan.NumCell(9, 2, float64(len(req.Items)), fmtInteger)

	headers := append([]string{"codigo", "cod_ean", "nombre"}, display...)
	for i := 1; i < brandCount; i++ {
		headers = append(headers,
			fmt.Sprintf("Dif. %s vs %s", display[i], base),
			fmt.Sprintf("%% %s vs %s", display[i], base))
	}
	headers = append(headers,
		"Precio MAX", "Precio MIN",
		"% MAX vs "+base, "% MIN vs "+base,
		"Promedio", "Desv. Est.", "Coef. Variación", "Dispersión",
		"Ranking "+base, "Nº más baratos", "Nº más caros", "Precio sugerido")
	for i, h := range headers {
		plan.HeaderCell(priceHeaderRow, i+1, h)
	}

	for i, it := range req.Items {
		row := priceDataStartRow + i
		plan.Cell(row, 1, it.Codigo)
		plan.Cell(row, 2, it.CodEAN)
		plan.Cell(row, 3, it.Nombre)

		var bp BrandPrices
		for b := 0; b < brandCount; b++ {
			if entered[b] == "" {
				continue
			}
			if v, ok := it.Precios[entered[b]]; ok {
				price := v
				bp[b] = &price
				plan.NumCell(row, colBasePrice+b, price, fmtCurrency)
			}
		}
		stats := bp.Stats()

		baseRef := cellRef(colBasePrice, row)
		priceRange := rangeRef(colBasePrice, row, colBasePrice+brandCount-1, row)

		var pctRefs []string
		for c := 1; c < brandCount; c++ {
			compRef := cellRef(colBasePrice+c, row)
			difCol := colDiffStart + (c-1)*2
			pctCol := difCol + 1
			plan.FormulaCell(row, difCol, diffFormula(baseRef, compRef), fmtCurrency)
			plan.FormulaCell(row, pctCol, pctFormula(baseRef, compRef), fmtPercent)
			pctRefs = append(pctRefs, cellRef(pctCol, row))
		}
		pctList := strings.Join(pctRefs, ",")

		plan.FormulaCell(row, colMax, maxFormula(priceRange), fmtCurrency)
		plan.FormulaCell(row, colMin, minFormula(priceRange), fmtCurrency)
		plan.FormulaCell(row, colMaxPct, maxFormula(pctList), fmtPercent)
		plan.FormulaCell(row, colMinPct, minFormula(pctList), fmtPercent)

		if stats.Count >= 1 {
			plan.FormulaCell(row, colMean, averageFormula(priceRange), fmtCurrency)
		}
		if stats.Count >= 2 {
			plan.FormulaCell(row, colStdev, stdevFormula(priceRange), fmtDecimal)
			plan.FormulaCell(row, colCV, cvFormula(cellRef(colStdev, row), cellRef(colMean, row)), fmtPercent)
			plan.FormulaCell(row, colTier, tierFormula(cellRef(colCV, row)), "")
		}
		if stats.HasBase {
			plan.FormulaCell(row, colRank, rankFormula(baseRef, priceRange), fmtInteger)
			plan.FormulaCell(row, colCheaper, countCheaperFormula(priceRange, baseRef), fmtInteger)
			plan.FormulaCell(row, colCostlier, countCostlierFormula(priceRange, baseRef), fmtInteger)
		}

		switch {
		case it.PrecioSugerido != nil:
			plan.NumCell(row, colSuggested, round2(*it.PrecioSugerido), fmtCurrency)
		case stats.Count >= 1:
			plan.NumCell(row, colSuggested, stats.SuggestedPrice, fmtCurrency)
		}
	}

	filename := "comparacion_precios_" + safeName(colaborador, "sin_colaborador") + "_" + fecha + ".xlsx"
	return []*SheetPlan{plan}, filename, nil
}
