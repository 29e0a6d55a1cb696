package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Performance ratios derived from a test's raw counters. Percentages are
// float64 (e.g. ROI 50.0 means +50%); per-unit costs stay decimal since they
// are money. Every ratio is 0 when its denominator is 0.

// CTR returns clicks/impressions as a percentage.
func (t Test) CTR() float64 {
	if t.Impressions == 0 {
		return 0
	}
	return float64(t.Clicks) / float64(t.Impressions) * 100
}

// ConversionRate returns conversions/clicks as a percentage.
func (t Test) ConversionRate() float64 {
	if t.Clicks == 0 {
		return 0
	}
	return float64(t.Conversions) / float64(t.Clicks) * 100
}

// CPC returns invested amount per click.
func (t Test) CPC() decimal.Decimal {
	if t.Clicks == 0 {
		return decimal.Zero
	}
	return t.InvestedAmount.Div(decimal.NewFromInt(t.Clicks))
}

// CPA returns invested amount per conversion.
func (t Test) CPA() decimal.Decimal {
	if t.Conversions == 0 {
		return decimal.Zero
	}
	return t.InvestedAmount.Div(decimal.NewFromInt(t.Conversions))
}

// ROI returns (return - invested) / invested as a percentage.
func (t Test) ROI() float64 {
	if t.InvestedAmount.IsZero() {
		return 0
	}
	return t.ReturnValue.Sub(t.InvestedAmount).Div(t.InvestedAmount).InexactFloat64() * 100
}

// ROAS returns return/invested as a percentage.
func (t Test) ROAS() float64 {
	if t.InvestedAmount.IsZero() {
		return 0
	}
	return t.ReturnValue.Div(t.InvestedAmount).InexactFloat64() * 100
}

// Metrics aggregates a collection of tests.
type Metrics struct {
	TotalInvestment decimal.Decimal
	TotalTests      int
	SuccessRate     float64
	NetResult       decimal.Decimal
	AvgROI          float64
	AvgCPA          decimal.Decimal
}

// CalculateMetrics folds a test collection into aggregate figures. Success
// means positive ROI. Averages over an empty collection are 0.
func CalculateMetrics(tests []Test) Metrics {
	m := Metrics{
		TotalInvestment: decimal.Zero,
		NetResult:       decimal.Zero,
		AvgCPA:          decimal.Zero,
		TotalTests:      len(tests),
	}
	if len(tests) == 0 {
		return m
	}
	revenue := decimal.Zero
	cpaSum := decimal.Zero
	roiSum := 0.0
	successful := 0
	for _, t := range tests {
		m.TotalInvestment = m.TotalInvestment.Add(t.InvestedAmount)
		revenue = revenue.Add(t.ReturnValue)
		roi := t.ROI()
		roiSum += roi
		if roi > 0 {
			successful++
		}
		cpaSum = cpaSum.Add(t.CPA())
	}
	n := decimal.NewFromInt(int64(len(tests)))
	m.SuccessRate = float64(successful) / float64(len(tests)) * 100
	m.NetResult = revenue.Sub(m.TotalInvestment)
	m.AvgROI = roiSum / float64(len(tests))
	m.AvgCPA = cpaSum.Div(n)
	return m
}

// OfferStats is one offer's standing in the ranking.
type OfferStats struct {
	Offer           Offer
	TotalTests      int
	TotalInvestment decimal.Decimal
	TotalRevenue    decimal.Decimal
	AvgROI          float64
	AvgROAS         float64
	SuccessRate     float64
	NetProfit       decimal.Decimal
	Score           float64
}

// RankOffers folds each offer's related tests into performance figures and
// orders them by composite score, best first. The score weighs average ROI
// at 0.4, success rate at 0.3 and net profit (per thousand, floored at 0) at
// 0.3. The sort is stable so ties keep input order.
func RankOffers(offers []Offer, tests []Test) []OfferStats {
	stats := make([]OfferStats, 0, len(offers))
	for _, offer := range offers {
		s := OfferStats{
			Offer:           offer,
			TotalInvestment: decimal.Zero,
			TotalRevenue:    decimal.Zero,
			NetProfit:       decimal.Zero,
		}
		var roiSum, roasSum float64
		successful := 0
		for _, t := range tests {
			if t.OfferID == nil || *t.OfferID != offer.ID {
				continue
			}
			s.TotalTests++
			s.TotalInvestment = s.TotalInvestment.Add(t.InvestedAmount)
			s.TotalRevenue = s.TotalRevenue.Add(t.ReturnValue)
			roi := t.ROI()
			roiSum += roi
			roasSum += t.ROAS()
			if roi > 0 {
				successful++
			}
		}
		if s.TotalTests > 0 {
			n := float64(s.TotalTests)
			s.AvgROI = roiSum / n
			s.AvgROAS = roasSum / n
			s.SuccessRate = float64(successful) / n * 100
			s.NetProfit = s.TotalRevenue.Sub(s.TotalInvestment)

			profit := s.NetProfit.InexactFloat64()
			if profit < 0 {
				profit = 0
			}
			s.Score = s.AvgROI*0.4 + s.SuccessRate*0.3 + profit/1000*0.3
		}
		stats = append(stats, s)
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Score > stats[j].Score
	})
	return stats
}
