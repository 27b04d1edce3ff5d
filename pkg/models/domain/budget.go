package domain

import "time"

type Frequency string

const (
	FrequencyDaily        Frequency = "daily"
	FrequencyWeekly       Frequency = "weekly"
	FrequencyBiweekly     Frequency = "biweekly"
	FrequencyMonthly      Frequency = "monthly"
	FrequencySpecificDays Frequency = "specific_days"
)

// ParseFrequency maps a frequency tag onto the closed enumeration.
// Unknown tags default to monthly, the most conservative cadence.
func ParseFrequency(s string) Frequency {
	switch Frequency(s) {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencySpecificDays:
		return Frequency(s)
	default:
		return FrequencyMonthly
	}
}

type IncomeSource struct {
	Source    string
	Amount    float64
	Frequency Frequency
	NextDate  time.Time
}

type Bill struct {
	Name      string
	Amount    float64
	DueDate   time.Time
	Frequency Frequency
	Category  string
}

type ExpenseItem struct {
	Name      string
	Amount    float64
	Frequency Frequency
	Category  string
}

type FinancialGoal struct {
	Name         string
	TargetAmount float64
	TargetDate   time.Time
	Priority     Priority
}

// BudgetRecord is the structured financial input for one synthesis run.
// It is read-only to the engine; all monetary amounts are non-negative.
type BudgetRecord struct {
	StartingBalance  float64
	Income           IncomeSource
	Bills            []Bill
	SavingsGoal      float64
	EmergencyFund    float64
	DebtPayoff       float64
	AdditionalIncome []IncomeSource
	Expenses         []ExpenseItem
	FinancialGoals   []FinancialGoal
}

// Empty reports whether the record carries no financial data at all,
// e.g. a brain-dump run that supplied only activities.
func (b BudgetRecord) Empty() bool {
	return b.StartingBalance == 0 &&
		b.Income.Amount == 0 &&
		len(b.Bills) == 0 &&
		b.SavingsGoal == 0 &&
		b.EmergencyFund == 0 &&
		len(b.AdditionalIncome) == 0 &&
		len(b.Expenses) == 0
}
