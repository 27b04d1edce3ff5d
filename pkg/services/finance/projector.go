// Package finance normalizes cadence-bearing monetary figures to a common
// weekly cadence and derives the daily metrics the plan builder embeds in
// financial review events. Everything here is pure: inputs are never
// mutated and repeated calls yield identical results.
package finance

import "github.com/de-tools/plan-atlas/pkg/models/domain"

// weeklyAmount converts an amount at the given cadence to a weekly figure:
// monthly divides by 4, biweekly by 2, anything else passes through.
func weeklyAmount(amount float64, freq domain.Frequency) float64 {
	switch freq {
	case domain.FrequencyMonthly:
		return amount / 4
	case domain.FrequencyBiweekly:
		return amount / 2
	default:
		return amount
	}
}

// Project normalizes a budget record to weekly figures. The savings goal is
// a plain number on the record, so it follows the income cadence; each
// expense carries its own cadence, falling back to the income cadence when
// unset.
func Project(rec domain.BudgetRecord) domain.WeeklyFigures {
	income := weeklyAmount(rec.Income.Amount, rec.Income.Frequency)
	for _, extra := range rec.AdditionalIncome {
		income += weeklyAmount(extra.Amount, extra.Frequency)
	}

	expenses := make(map[string]float64, len(rec.Expenses))
	var expensesTotal float64
	for _, item := range rec.Expenses {
		freq := item.Frequency
		if freq == "" {
			freq = rec.Income.Frequency
		}
		amount := weeklyAmount(item.Amount, freq)
		expenses[item.Name] = amount
		expensesTotal += amount
	}

	savings := weeklyAmount(rec.SavingsGoal, rec.Income.Frequency)

	figures := domain.WeeklyFigures{
		Income:        income,
		Expenses:      expenses,
		ExpensesTotal: expensesTotal,
		Savings:       savings,
		Discretionary: income - expensesTotal - savings,
	}

	// A zero target means the ratio is undefined, not infinite.
	if rec.EmergencyFund > 0 {
		p := rec.StartingBalance / rec.EmergencyFund
		figures.EmergencyFundProgress = &p
	}
	if rec.DebtPayoff > 0 {
		p := rec.StartingBalance / rec.DebtPayoff
		figures.DebtPayoffProgress = &p
	}

	return figures
}

// DailyMetrics scales weekly figures down to a single day. Progress ratios
// are copied as-is; they are not per-day quantities.
func DailyMetrics(figures domain.WeeklyFigures) domain.DailyFinancialMetrics {
	metrics := domain.DailyFinancialMetrics{
		DailyBudget:           figures.Income / 7,
		DailyExpenses:         figures.ExpensesTotal / 7,
		DailySavings:          figures.Savings / 7,
		DiscretionarySpending: figures.Discretionary / 7,
	}

	if figures.EmergencyFundProgress != nil {
		p := *figures.EmergencyFundProgress
		metrics.EmergencyFundProgress = &p
	}
	if figures.DebtPayoffProgress != nil {
		p := *figures.DebtPayoffProgress
		metrics.DebtPayoffProgress = &p
	}

	return metrics
}
