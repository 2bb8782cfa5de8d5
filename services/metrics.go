package services

import (
	"log"
	"math"
	"sort"
	"time"
)

// round2 rounds to 2 decimal units (currency and weight resolution).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CaseCount converts a unit quantity into shipping cases, rounded to 2
// decimals. A case size of zero (or less) yields 0 rather than a fault.
func CaseCount(qty, caseSize float64) float64 {
	if caseSize <= 0 {
		return 0
	}
	return round2(qty / caseSize)
}

// LineWeight is the weighted subtotal quantity × unit weight.
func LineWeight(qty, unitWeight float64) float64 {
	return round2(qty * unitWeight)
}

// LineValue is the weighted subtotal quantity × unit price.
func LineValue(qty, unitPrice float64) float64 {
	return round2(qty * unitPrice)
}

// UniqueLineCount counts distinct category tags under the matching
// normalization (trimmed, accent-folded, case-insensitive).
func UniqueLineCount(items []LineItem) int {
	seen := map[string]struct{}{}
	for _, it := range items {
		seen[NormalizeKey(it.Linea)] = struct{}{}
	}
	return len(seen)
}

// ── Price comparison statistics ─────────────────────────────────────────

// Dispersion tier thresholds on the coefficient of variation.
const (
	dispersionHigh   = 0.30
	dispersionMedium = 0.15
)

// TierFor buckets a coefficient of variation into the display vocabulary.
func TierFor(cv float64) string {
	switch {
	case cv >= dispersionHigh:
		return "alta"
	case cv >= dispersionMedium:
		return "media"
	default:
		return "baja"
	}
}

// BrandPrices holds the five comparison columns for one product row, index 0
// being the base brand. A nil entry is a missing/unparseable price, which is
// excluded from every range computation.
type BrandPrices [5]*float64

// PriceStats is the in-process mirror of the statistics the sheet carries as
// live formulas. It also gates formula emission: no dispersion formulas are
// written for rows with fewer than two numeric prices, and no rank or
// cheaper/dearer counts without a numeric base.
type PriceStats struct {
	Count   int // numeric prices among the five
	HasBase bool

	Min, Max       float64
	Mean           float64
	StdDev         float64 // sample standard deviation
	CV             float64
	Tier           string
	BaseRank       int // 1 = cheapest; 0 when the base is missing
	Cheaper        int // brands strictly below the base
	Costlier       int // brands strictly above the base
	SuggestedPrice float64
}

// Stats computes the row statistics over the numeric prices only.
func (bp BrandPrices) Stats() PriceStats {
	var s PriceStats
	var values []float64
	for _, p := range bp {
		if p != nil {
			values = append(values, *p)
		}
	}
	s.Count = len(values)
	if s.Count == 0 {
		return s
	}

	s.Min, s.Max = values[0], values[0]
	var sum float64
	for _, v := range values {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += v
	}
	s.Mean = sum / float64(s.Count)
	s.SuggestedPrice = round2(s.Mean)

	if s.Count >= 2 {
		var sq float64
		for _, v := range values {
			d := v - s.Mean
			sq += d * d
		}
		s.StdDev = math.Sqrt(sq / float64(s.Count-1))
		if s.Mean != 0 {
			s.CV = s.StdDev / s.Mean
			s.Tier = TierFor(s.CV)
		}
	}

	if bp[0] != nil {
		s.HasBase = true
		base := *bp[0]
		s.BaseRank = 1
		for i, p := range bp {
			if i == 0 || p == nil {
				continue
			}
			if *p < base {
				s.BaseRank++
				s.Cheaper++
			} else if *p > base {
				s.Costlier++
			}
		}
	}
	return s
}

// ── Payment schedule ────────────────────────────────────────────────────

// plannerDateLayout is the due-date format the calendar picker produces.
const plannerDateLayout = "02/01/2006"

// DistributeAmount splits a total evenly across n installments, each rounded
// to 2 decimals, with the last installment absorbing the full rounding
// remainder so the sum equals the total exactly. Rounding error is never
// spread across multiple installments.
func DistributeAmount(total float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	each := round2(total / float64(n))
	out := make([]float64, n)
	for i := range out {
		out[i] = each
	}
	out[n-1] = round2(total - each*float64(n-1))
	return out
}

// SortDueDates orders due dates chronologically. Dates that do not parse
// keep their relative input order and sort after every valid date.
func SortDueDates(dates []string) []string {
	type parsed struct {
		raw string
		t   time.Time
		ok  bool
		idx int
	}
	ps := make([]parsed, len(dates))
	for i, d := range dates {
		t, err := time.Parse(plannerDateLayout, NormalizeDisplay(d))
		ps[i] = parsed{raw: d, t: t, ok: err == nil, idx: i}
	}
	sort.SliceStable(ps, func(a, b int) bool {
		if ps[a].ok != ps[b].ok {
			return ps[a].ok
		}
		if !ps[a].ok {
			return ps[a].idx < ps[b].idx
		}
		return ps[a].t.Before(ps[b].t)
	})
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.raw
	}
	return out
}

// MonthTotal is one calendar month's share of the schedule.
type MonthTotal struct {
	Key    string // YYYY-MM
	Amount float64
}

// SummarizeByMonth groups installments by calendar month. Dates that fail to
// parse are logged and excluded from the summary; they still keep their
// installment in the detail sheet, so a bad date is never fatal.
func SummarizeByMonth(dates []string, amounts []float64) []MonthTotal {
	totals := map[string]float64{}
	for i, d := range dates {
		if i >= len(amounts) {
			break
		}
		t, err := time.Parse(plannerDateLayout, NormalizeDisplay(d))
		if err != nil {
			log.Printf("planner: fecha no válida %q, excluida del resumen mensual: %v", d, err)
			continue
		}
		totals[t.Format("2006-01")] += amounts[i]
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]MonthTotal, len(keys))
	for i, k := range keys {
		out[i] = MonthTotal{Key: k, Amount: round2(totals[k])}
	}
	return out
}
