package domain

import "time"

type EventCategory string

const (
	CategoryFinancial EventCategory = "financial"
	CategoryMeal      EventCategory = "meal"
	CategoryWorkout   EventCategory = "workout"
	CategoryLearning  EventCategory = "learning"
	CategoryHobby     EventCategory = "hobby"
	CategoryWork      EventCategory = "work"
	CategoryOther     EventCategory = "other"
)

// CategoryColors maps each event category to its display color,
// carried through to the COLOR property of the calendar artifact.
var CategoryColors = map[EventCategory]string{
	CategoryFinancial: "#4CAF50",
	CategoryMeal:      "#FF9800",
	CategoryWorkout:   "#2196F3",
	CategoryLearning:  "#9C27B0",
	CategoryHobby:     "#E91E63",
	CategoryWork:      "#FF5722",
	CategoryOther:     "#607D8B",
}

// NormalizeCategory coerces unknown category labels to CategoryOther.
func NormalizeCategory(s string) EventCategory {
	c := EventCategory(s)
	if _, ok := CategoryColors[c]; ok {
		return c
	}
	return CategoryOther
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Numeric maps a priority onto the three-tier iCalendar convention.
func (p Priority) Numeric() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityLow:
		return 9
	default:
		return 5
	}
}

// NormalizePriority coerces unknown priority labels to PriorityMedium.
func NormalizePriority(s string) Priority {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s)
	default:
		return PriorityMedium
	}
}

type FinancialEventType string

const (
	FinancialBillPayment  FinancialEventType = "bill_payment"
	FinancialIncome       FinancialEventType = "income"
	FinancialExpense      FinancialEventType = "expense"
	FinancialSavings      FinancialEventType = "savings"
	FinancialBudgetReview FinancialEventType = "budget_review"
)

// FinancialDetails is the extra payload carried by financial events and
// exported as X-FINANCIAL-* properties on the artifact.
type FinancialDetails struct {
	Type           FinancialEventType
	Amount         float64
	DueDate        time.Time
	AccountBalance float64
	Notes          string
}

type SubActivity struct {
	Name        string
	Duration    string
	Description string
}

// ActivityDetails is opaque metadata attached to activity events.
type ActivityDetails struct {
	Type          string
	PreferredTime string
	Notes         string
	SubActivities []SubActivity
}

// Event is a single synthesized calendar entry. End is always after Start.
type Event struct {
	Title       string
	Date        time.Time
	Start       time.Time
	End         time.Time
	Description string
	Category    EventCategory
	Priority    Priority
	Financial   *FinancialDetails
	Activity    *ActivityDetails
}
