package workspace

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innovatepam/portal/internal/domain/entities"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func scheduledTodo(date string, done bool) *entities.Todo {
	return &entities.Todo{ID: uuid.New(), Title: "t", Date: &date, Done: done}
}

func eventOn(date string) *entities.Event {
	return &entities.Event{ID: uuid.New(), Title: "e", Date: date, Color: entities.DefaultEventColor}
}

func TestRenderMonth_LeadingBlanksMatchWeekday(t *testing.T) {
	for year := 2020; year <= 2026; year++ {
		for month0 := 0; month0 < 12; month0++ {
			grid := RenderMonth(year, month0, nil, nil, nil, testNow)

			want := int(time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
			assert.Equal(t, want, grid.LeadingBlanks, "year=%d month0=%d", year, month0)

			blanks := 0
			for _, cell := range grid.Cells {
				if cell.Blank() {
					blanks++
				}
			}
			assert.Equal(t, want, blanks, "year=%d month0=%d", year, month0)
		}
	}
}

func TestRenderMonth_DayCounts(t *testing.T) {
	tests := []struct {
		year   int
		month0 int
		days   int
	}{
		{2024, 0, 31},  // January
		{2024, 1, 29},  // leap February
		{2023, 1, 28},  // non-leap February
		{2000, 1, 29},  // century leap year
		{1900, 1, 28},  // century non-leap year
		{2024, 3, 30},  // April
		{2024, 11, 31}, // December
	}

	for _, tt := range tests {
		grid := RenderMonth(tt.year, tt.month0, nil, nil, nil, testNow)

		assert.Equal(t, tt.days, grid.DayCount, "year=%d month0=%d", tt.year, tt.month0)
		assert.Len(t, grid.Cells, grid.LeadingBlanks+tt.days)
	}
}

func TestRenderMonth_Indicators(t *testing.T) {
	events := []*entities.Event{eventOn("2024-06-10")}
	todos := []*entities.Todo{
		scheduledTodo("2024-06-10", false),
		scheduledTodo("2024-06-12", true),
	}
	ideaDates := map[string]struct{}{"2024-06-10": {}}

	grid := RenderMonth(2024, 5, events, ideaDates, todos, testNow)

	day10 := grid.Cells[grid.LeadingBlanks+9]
	assert.Equal(t, 10, day10.Day)
	assert.Equal(t, Annotation{HasIdea: true, HasEvent: true, HasPendingTask: true}, day10.Annotation)
	assert.Equal(t, []Indicator{IndicatorIdea, IndicatorEvent, IndicatorPendingTask}, day10.Annotation.Indicators())

	day12 := grid.Cells[grid.LeadingBlanks+11]
	assert.Equal(t, Annotation{HasDoneTask: true}, day12.Annotation)

	// Every other day carries no indicators.
	for _, cell := range grid.Cells {
		if cell.Blank() || cell.Day == 10 || cell.Day == 12 {
			continue
		}
		assert.True(t, cell.Annotation.Empty(), "day %d", cell.Day)
	}
}

func TestRenderMonth_AllFourIndicatorsCoexist(t *testing.T) {
	key := "2024-06-20"
	grid := RenderMonth(2024, 5,
		[]*entities.Event{eventOn(key)},
		map[string]struct{}{key: {}},
		[]*entities.Todo{scheduledTodo(key, true), scheduledTodo(key, false)},
		testNow,
	)

	cell := grid.Cells[grid.LeadingBlanks+19]
	require.Equal(t, 20, cell.Day)
	assert.Equal(t, []Indicator{IndicatorIdea, IndicatorEvent, IndicatorDoneTask, IndicatorPendingTask},
		cell.Annotation.Indicators())
}

func TestRenderMonth_TodayMarker(t *testing.T) {
	grid := RenderMonth(2024, 5, nil, nil, nil, testNow)

	for _, cell := range grid.Cells {
		if cell.Day == 15 {
			assert.True(t, cell.Today)
		} else {
			assert.False(t, cell.Today, "day %d", cell.Day)
		}
	}

	// Same month in another year: no today marker at all.
	grid = RenderMonth(2023, 5, nil, nil, nil, testNow)
	for _, cell := range grid.Cells {
		assert.False(t, cell.Today)
	}
}

func TestRenderMonth_Idempotent(t *testing.T) {
	events := []*entities.Event{eventOn("2024-06-03")}
	todos := []*entities.Todo{scheduledTodo("2024-06-03", false)}
	ideaDates := map[string]struct{}{"2024-06-05": {}}

	first := RenderMonth(2024, 5, events, ideaDates, todos, testNow)
	second := RenderMonth(2024, 5, events, ideaDates, todos, testNow)

	assert.Equal(t, first, second)
}

func TestRenderMonth_February2024Scenario(t *testing.T) {
	events := []*entities.Event{eventOn("2024-02-10")}
	todos := []*entities.Todo{scheduledTodo("2024-02-10", false)}

	grid := RenderMonth(2024, 1, events, nil, todos, testNow)

	assert.Equal(t, 29, grid.DayCount)
	wantBlanks := int(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC).Weekday())
	assert.Equal(t, wantBlanks, grid.LeadingBlanks)

	day10 := grid.Cells[grid.LeadingBlanks+9]
	require.Equal(t, 10, day10.Day)
	assert.Equal(t, []Indicator{IndicatorEvent, IndicatorPendingTask}, day10.Annotation.Indicators())
}

func TestRenderMonth_DeletedTodoDropsIndicatorOnRederive(t *testing.T) {
	todos := []*entities.Todo{
		scheduledTodo("2024-06-08", false),
		scheduledTodo("2024-06-21", false),
	}

	before := RenderMonth(2024, 5, nil, nil, todos, testNow)
	assert.True(t, before.Cells[before.LeadingBlanks+7].Annotation.HasPendingTask)

	// Delete the day-8 todo and re-derive; annotations are never patched.
	after := RenderMonth(2024, 5, nil, nil, todos[1:], testNow)
	assert.False(t, after.Cells[after.LeadingBlanks+7].Annotation.HasPendingTask)
	assert.True(t, after.Cells[after.LeadingBlanks+20].Annotation.HasPendingTask)
}

func TestRenderMonth_UnscheduledTodosIgnored(t *testing.T) {
	todos := []*entities.Todo{{ID: uuid.New(), Title: "someday"}}

	grid := RenderMonth(2024, 5, nil, nil, todos, testNow)

	for _, cell := range grid.Cells {
		assert.True(t, cell.Annotation.Empty())
	}
}

func TestDateKey_ZeroPadded(t *testing.T) {
	assert.Equal(t, "2024-03-05", DateKey(2024, 2, 5))
	assert.Equal(t, "2024-12-31", DateKey(2024, 11, 31))
	assert.Equal(t, "0999-01-01", DateKey(999, 0, 1))
}

func TestIdeaDateSet(t *testing.T) {
	ideas := []*entities.Idea{
		{CreatedAt: time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)},
		{CreatedAt: time.Date(2024, time.March, 15, 18, 0, 0, 0, time.UTC)},
		{CreatedAt: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)},
	}

	set := IdeaDateSet(ideas)

	assert.Len(t, set, 2)
	assert.Contains(t, set, "2024-03-15")
	assert.Contains(t, set, "2024-04-01")
}

func TestEventStoreCapabilities(t *testing.T) {
	caps := EventStoreCapabilities()

	assert.False(t, caps.CanUpdate)
	assert.False(t, caps.CanDelete)
}
