package budget

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CategoryTotal is one category's amount with its display label.
type CategoryTotal struct {
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Amount   float64 `json:"amount"`
}

// Summary aggregates a session's adjustments. Amounts are in billions.
type Summary struct {
	TotalSpending float64         `json:"total_spending"`
	TotalRevenue  float64         `json:"total_revenue"`
	Deficit       float64         `json:"deficit"`
	Spending      []CategoryTotal `json:"spending"`
	Revenue       []CategoryTotal `json:"revenue"`
}

var titleCaser = cases.Title(language.AmericanEnglish)

// DisplayName turns a canonical category key into a label,
// "social_security" → "Social Security".
func DisplayName(category string) string {
	return titleCaser.String(strings.ReplaceAll(category, "_", " "))
}

// Summarize totals a session's adjustments by kind and category.
func Summarize(adjustments []Adjustment) Summary {
	s := Summary{}
	for _, adj := range adjustments {
		total := CategoryTotal{
			Category: adj.Category,
			Label:    DisplayName(adj.Category),
			Amount:   adj.Amount,
		}
		if adj.Kind == KindRevenue {
			s.TotalRevenue += adj.Amount
			s.Revenue = append(s.Revenue, total)
		} else {
			s.TotalSpending += adj.Amount
			s.Spending = append(s.Spending, total)
		}
	}
	s.Deficit = s.TotalSpending - s.TotalRevenue

	sort.Slice(s.Spending, func(i, j int) bool { return s.Spending[i].Category < s.Spending[j].Category })
	sort.Slice(s.Revenue, func(i, j int) bool { return s.Revenue[i].Category < s.Revenue[j].Category })
	return s
}

// SpendingByCategory splits a session's adjustments into the inputs the
// classifier wants: spending amounts keyed by category, plus total revenue.
func SpendingByCategory(adjustments []Adjustment) (map[string]float64, float64) {
	spending := make(map[string]float64)
	var revenue float64
	for _, adj := range adjustments {
		if adj.Kind == KindRevenue {
			revenue += adj.Amount
			continue
		}
		spending[adj.Category] += adj.Amount
	}
	return spending, revenue
}
