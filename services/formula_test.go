package services

import "testing"

func TestCellAndRangeRefs(t *testing.T) {
	if got := cellRef(4, 12); got != "D12" {
		t.Errorf("cellRef(4, 12) = %q, want D12", got)
	}
	if got := rangeRef(4, 12, 8, 12); got != "D12:H12" {
		t.Errorf("rangeRef = %q, want D12:H12", got)
	}
}

func TestSumFormulas(t *testing.T) {
	if got := sumFormula(5, 10, 14); got != "SUM(E10:E14)" {
		t.Errorf("sumFormula = %q", got)
	}
	if got := sumProductFormula(4, 5, 9, 11); got != "SUMPRODUCT(D9:D11,E9:E11)" {
		t.Errorf("sumProductFormula = %q", got)
	}
}

func TestComparisonFormulas(t *testing.T) {
	if got := diffFormula("D12", "E12"); got != `IFERROR(D12-E12, "")` {
		t.Errorf("diffFormula = %q", got)
	}
	if got := pctFormula("D12", "E12"); got != `IFERROR((D12/E12)-1, "")` {
		t.Errorf("pctFormula = %q", got)
	}
	if got := maxFormula("D12:H12"); got != `IFERROR(MAX(D12:H12), "")` {
		t.Errorf("maxFormula = %q", got)
	}
	if got := minFormula("J12,L12,N12,P12"); got != `IFERROR(MIN(J12,L12,N12,P12), "")` {
		t.Errorf("minFormula = %q", got)
	}
}

func TestDispersionFormulas(t *testing.T) {
	if got := averageFormula("D12:H12"); got != `IFERROR(AVERAGE(D12:H12), "")` {
		t.Errorf("averageFormula = %q", got)
	}
	if got := stdevFormula("D12:H12"); got != `IFERROR(STDEV(D12:H12), "")` {
		t.Errorf("stdevFormula = %q", got)
	}
	if got := cvFormula("V12", "U12"); got != `IFERROR(V12/U12, "")` {
		t.Errorf("cvFormula = %q", got)
	}
	want := `IFERROR(IF(W12>=0.3,"alta",IF(W12>=0.15,"media","baja")), "")`
	if got := tierFormula("W12"); got != want {
		t.Errorf("tierFormula = %q, want %q", got, want)
	}
}

func TestRankingFormulas(t *testing.T) {
	if got := rankFormula("D12", "D12:H12"); got != `IFERROR(RANK(D12,D12:H12,1), "")` {
		t.Errorf("rankFormula = %q", got)
	}
	if got := countCheaperFormula("D12:H12", "D12"); got != `COUNTIF(D12:H12,"<"&D12)` {
		t.Errorf("countCheaperFormula = %q", got)
	}
	if got := countCostlierFormula("D12:H12", "D12"); got != `COUNTIF(D12:H12,">"&D12)` {
		t.Errorf("countCostlierFormula = %q", got)
	}
}
