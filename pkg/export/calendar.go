// Package export serializes a finished synthesis run into the iCalendar
// artifact.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/de-tools/plan-atlas/pkg/models/domain"
)

const productID = "-//Enhanced Life & Budget Planner//EN"

// Vendor properties carrying the structured payloads that plain iCalendar
// has no field for. Consumers that don't know them ignore them.
const (
	propFinancialType    ics.ComponentProperty = "X-FINANCIAL-TYPE"
	propFinancialAmount  ics.ComponentProperty = "X-FINANCIAL-AMOUNT"
	propFinancialDueDate ics.ComponentProperty = "X-FINANCIAL-DUE-DATE"
	propFinancialBalance ics.ComponentProperty = "X-FINANCIAL-BALANCE"
	propActivityDetails  ics.ComponentProperty = "X-ACTIVITY-DETAILS"
	propColor            ics.ComponentProperty = "COLOR"
)

// Calendar builds the iCalendar representation of a collection. Every event
// gets a fresh UID; the collection's append order is preserved.
func Calendar(col *domain.CalendarCollection) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetVersion("2.0")

	now := time.Now().UTC()
	for _, ev := range col.Events() {
		item := cal.AddEvent(uuid.NewString())
		item.SetDtStampTime(now)
		item.SetStartAt(ev.Start)
		item.SetEndAt(ev.End)
		item.SetSummary(ev.Title)
		if ev.Description != "" {
			item.SetDescription(ev.Description)
		}
		item.SetProperty(ics.ComponentProperty(ics.PropertyCategories), string(ev.Category))
		item.SetProperty(ics.ComponentProperty(ics.PropertyPriority), strconv.Itoa(ev.Priority.Numeric()))
		if color, ok := domain.CategoryColors[ev.Category]; ok {
			item.SetProperty(propColor, color)
		}

		if fin := ev.Financial; fin != nil {
			item.SetProperty(propFinancialType, string(fin.Type))
			item.SetProperty(propFinancialAmount, fmt.Sprintf("%.2f", fin.Amount))
			if !fin.DueDate.IsZero() {
				item.SetProperty(propFinancialDueDate, fin.DueDate.Format("2006-01-02"))
			}
			item.SetProperty(propFinancialBalance, fmt.Sprintf("%.2f", fin.AccountBalance))
		}

		if act := ev.Activity; act != nil {
			if payload, err := json.Marshal(act); err == nil {
				item.SetProperty(propActivityDetails, string(payload))
			}
		}
	}
	return cal
}

// Serialize renders the collection as iCalendar text.
func Serialize(col *domain.CalendarCollection) string {
	return Calendar(col).Serialize()
}

// WriteFile serializes the collection to the given path, replacing any
// previous artifact.
func WriteFile(path string, col *domain.CalendarCollection) error {
	if err := os.WriteFile(path, []byte(Serialize(col)), 0o644); err != nil {
		return fmt.Errorf("export: writing calendar: %w", err)
	}
	return nil
}
