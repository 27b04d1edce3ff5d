package extract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestNewChatClient_RequiresKey(t *testing.T) {
	assert.Nil(t, NewChatClient("", "", ""))
	assert.Nil(t, NewChatClient("", "   ", ""))
	assert.NotNil(t, NewChatClient("", "test-key", ""))
}

func TestExtractBudget_StripsFencesAndAppliesDefaults(t *testing.T) {
	// Given a completion wrapped in markdown fences with sparse fields
	content := "```json\n{\"starting_balance\": 1200.5, \"income\": {\"amount\": 4000}}\n```"
	srv := completionServer(t, http.StatusOK, content)
	defer srv.Close()

	ex := NewExtractor(NewChatClient(srv.URL, "test-key", ""))

	// When the budget is extracted
	info, err := ex.ExtractBudget(context.Background(), "I make 4000 a month")

	// Then the fences are stripped and missing fields are defaulted
	require.NoError(t, err)
	assert.Equal(t, 1200.5, info.StartingBalance)
	assert.Equal(t, 4000.0, info.Income.Amount)
	assert.Equal(t, "monthly", info.Income.Frequency)
	assert.NotEmpty(t, info.Income.NextDate)
	assert.NotNil(t, info.Bills)
	assert.NotNil(t, info.Expenses)
	assert.NotNil(t, info.FinancialGoals)
}

func TestExtractBudget_Unauthorized(t *testing.T) {
	srv := completionServer(t, http.StatusUnauthorized, "")
	defer srv.Close()

	ex := NewExtractor(NewChatClient(srv.URL, "test-key", ""))

	_, err := ex.ExtractBudget(context.Background(), "whatever")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestExtractBudget_RejectsNonJSON(t *testing.T) {
	srv := completionServer(t, http.StatusOK, "Sure! Here is your budget:")
	defer srv.Close()

	ex := NewExtractor(NewChatClient(srv.URL, "test-key", ""))

	_, err := ex.ExtractBudget(context.Background(), "whatever")
	assert.ErrorContains(t, err, "not valid JSON")
}

func TestExtractActivities_GoalDefaults(t *testing.T) {
	content := `{"goals": [{"title": "Read a chapter"}]}`
	srv := completionServer(t, http.StatusOK, content)
	defer srv.Close()

	ex := NewExtractor(NewChatClient(srv.URL, "test-key", ""))

	info, err := ex.ExtractActivities(context.Background(), "I want to read more")
	require.NoError(t, err)
	require.Len(t, info.Goals, 1)

	goal := info.Goals[0]
	assert.Equal(t, "Read a chapter", goal.Title)
	assert.Equal(t, "other", goal.Type)
	assert.Equal(t, "daily", goal.Frequency)
	assert.Equal(t, "1h", goal.Duration)
	assert.Equal(t, "morning", goal.PreferredTime)
	assert.Equal(t, "personal", goal.Category)
	assert.Equal(t, "medium", goal.Priority)
	assert.Equal(t, []string{"breakfast", "lunch", "dinner"}, info.Preferences.MealTimes)
}

func TestExtractBrainDump_RejectsEmptyPlan(t *testing.T) {
	srv := completionServer(t, http.StatusOK, `{"events": []}`)
	defer srv.Close()

	ex := NewExtractor(NewChatClient(srv.URL, "test-key", ""))

	_, err := ex.ExtractBrainDump(context.Background(), "nothing much today")
	assert.ErrorContains(t, err, "no events recognized")
}

func TestExtractBrainDump_EventDefaults(t *testing.T) {
	content := `{"events": [{"title": "Walk the dog"}], "work_schedule": {"days": ["monday"], "start_time": "09:00", "end_time": "17:00"}}`
	srv := completionServer(t, http.StatusOK, content)
	defer srv.Close()

	ex := NewExtractor(NewChatClient(srv.URL, "test-key", ""))

	plan, err := ex.ExtractBrainDump(context.Background(), "walk the dog, work 9 to 5")
	require.NoError(t, err)
	require.Len(t, plan.Events, 1)

	ev := plan.Events[0]
	assert.Equal(t, "Walk the dog", ev.Title)
	assert.Equal(t, "09:00", ev.Time)
	assert.Equal(t, "1h", ev.Duration)
	assert.Equal(t, "other", ev.Category)
	assert.Equal(t, "medium", ev.Priority)
	require.NotNil(t, plan.WorkSchedule)
	assert.Equal(t, "09:00", plan.WorkSchedule.StartTime)
}

func TestAdvise_ReturnsCompletionVerbatim(t *testing.T) {
	srv := completionServer(t, http.StatusOK, "You are on track. Keep saving.")
	defer srv.Close()

	ex := NewExtractor(NewChatClient(srv.URL, "test-key", ""))

	advice, err := ex.Advise(context.Background(), "Weekly income: $1000")
	require.NoError(t, err)
	assert.Equal(t, "You are on track. Keep saving.", advice)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
}
