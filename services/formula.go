package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// The formula emitter writes live spreadsheet formulas over the just-written
// data range so recipients can edit inputs and watch the aggregates follow.
// Every ratio is IFERROR-wrapped: division by zero or a non-numeric operand
// renders blank, never a propagated error value.

func cellRef(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		// Coordinates are produced by the layout engine and start at 1,1.
		panic(fmt.Sprintf("bad cell coordinates %d,%d: %v", col, row, err))
	}
	return name
}

func rangeRef(colFrom, rowFrom, colTo, rowTo int) string {
	return cellRef(colFrom, rowFrom) + ":" + cellRef(colTo, rowTo)
}

// ifError wraps an expression so evaluation faults render as blank.
func ifError(expr string) string {
	return fmt.Sprintf(`IFERROR(%s, "")`, expr)
}

// sumFormula totals one column over the data rows.
func sumFormula(col, rowFrom, rowTo int) string {
	return fmt.Sprintf("SUM(%s)", rangeRef(col, rowFrom, col, rowTo))
}

// sumProductFormula totals the pairwise product of two columns, e.g.
// quantity × unit weight.
func sumProductFormula(colA, colB, rowFrom, rowTo int) string {
	return fmt.Sprintf("SUMPRODUCT(%s,%s)",
		rangeRef(colA, rowFrom, colA, rowTo),
		rangeRef(colB, rowFrom, colB, rowTo))
}

// diffFormula is the documented sign convention for price comparisons:
// base − competitor, so a positive difference means the base brand is dearer.
func diffFormula(baseRef, compRef string) string {
	return ifError(fmt.Sprintf("%s-%s", baseRef, compRef))
}

// pctFormula is difference ÷ competitor, expressed as base/competitor − 1.
func pctFormula(baseRef, compRef string) string {
	return ifError(fmt.Sprintf("(%s/%s)-1", baseRef, compRef))
}

func maxFormula(over string) string {
	return ifError(fmt.Sprintf("MAX(%s)", over))
}

func minFormula(over string) string {
	return ifError(fmt.Sprintf("MIN(%s)", over))
}

func averageFormula(over string) string {
	return ifError(fmt.Sprintf("AVERAGE(%s)", over))
}

// stdevFormula is the sample standard deviation over the price range.
func stdevFormula(over string) string {
	return ifError(fmt.Sprintf("STDEV(%s)", over))
}

func cvFormula(stdevRef, meanRef string) string {
	return ifError(fmt.Sprintf("%s/%s", stdevRef, meanRef))
}

// tierFormula buckets the coefficient of variation into the three dispersion
// tiers as a single composite formula, same thresholds as TierFor.
func tierFormula(cvRef string) string {
	return ifError(fmt.Sprintf(
		`IF(%s>=%v,"alta",IF(%s>=%v,"media","baja"))`,
		cvRef, dispersionHigh, cvRef, dispersionMedium))
}

// rankFormula ranks the base price ascending among all five brands
// (1 = cheapest).
func rankFormula(baseRef, priceRange string) string {
	return ifError(fmt.Sprintf("RANK(%s,%s,1)", baseRef, priceRange))
}

// countCheaperFormula counts competitors strictly below the base price.
func countCheaperFormula(priceRange, baseRef string) string {
	return fmt.Sprintf(`COUNTIF(%s,"<"&%s)`, priceRange, baseRef)
}

// countCostlierFormula counts competitors strictly above the base price.
func countCostlierFormula(priceRange, baseRef string) string {
	return fmt.Sprintf(`COUNTIF(%s,">"&%s)`, priceRange, baseRef)
}
