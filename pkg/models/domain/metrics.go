package domain

// WeeklyFigures holds every cadence-bearing figure normalized to one week.
type WeeklyFigures struct {
	Income        float64
	Expenses      map[string]float64
	ExpensesTotal float64
	Savings       float64
	Discretionary float64

	// Progress ratios are nil when the corresponding target is absent or
	// zero, never a division-by-zero result.
	EmergencyFundProgress *float64
	DebtPayoffProgress    *float64
}

// DailyFinancialMetrics is WeeklyFigures scaled to a single day. Derived,
// never persisted on its own.
type DailyFinancialMetrics struct {
	DailyBudget           float64
	DailyExpenses         float64
	DailySavings          float64
	DiscretionarySpending float64
	EmergencyFundProgress *float64
	DebtPayoffProgress    *float64
}
