// Package workspace implements the combined todo-list and mini-calendar view:
// a pure month aggregator over the idea, event and todo caches, a day view
// composer, and an explicit session object holding the caches and the
// currently visible month. Annotations are never stored; every render derives
// them from the source lists, so mutations are reflected by re-deriving.
package workspace

import (
	"fmt"
	"time"

	"github.com/innovatepam/portal/internal/domain/entities"
)

// Indicator is a calendar dot rendered on a day cell. A day can carry all
// four at once; the order below is the display order.
type Indicator string

const (
	IndicatorIdea        Indicator = "idea"
	IndicatorEvent       Indicator = "event"
	IndicatorDoneTask    Indicator = "done-task"
	IndicatorPendingTask Indicator = "pending-task"
)

// Annotation is the derived per-day summary of idea/event/todo presence.
type Annotation struct {
	HasIdea        bool `json:"has_idea"`
	HasEvent       bool `json:"has_event"`
	HasDoneTask    bool `json:"has_done_task"`
	HasPendingTask bool `json:"has_pending_task"`
}

// Indicators returns the dots to render, in fixed display order.
func (a Annotation) Indicators() []Indicator {
	var dots []Indicator
	if a.HasIdea {
		dots = append(dots, IndicatorIdea)
	}
	if a.HasEvent {
		dots = append(dots, IndicatorEvent)
	}
	if a.HasDoneTask {
		dots = append(dots, IndicatorDoneTask)
	}
	if a.HasPendingTask {
		dots = append(dots, IndicatorPendingTask)
	}
	return dots
}

// Empty reports whether the day carries no indicators at all.
func (a Annotation) Empty() bool {
	return !a.HasIdea && !a.HasEvent && !a.HasDoneTask && !a.HasPendingTask
}

// DayCell is one calendar cell. Leading cells before day 1 have Day == 0 and
// an empty Key; they are non-interactive padding.
type DayCell struct {
	Day        int               `json:"day"`
	Key        string            `json:"key"`
	Today      bool              `json:"today"`
	Annotation Annotation        `json:"annotation"`
	Events     []*entities.Event `json:"events,omitempty"`
	Todos      []*entities.Todo  `json:"todos,omitempty"`
}

// Blank reports whether the cell is leading padding before day 1.
func (c DayCell) Blank() bool {
	return c.Day == 0
}

// MonthGrid is the view-model for one calendar month. Month is 0-indexed
// (January = 0) to match the navigation state; Title is 1-indexed prose.
type MonthGrid struct {
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	Title         string    `json:"title"`
	LeadingBlanks int       `json:"leading_blanks"`
	DayCount      int       `json:"day_count"`
	Cells         []DayCell `json:"cells"`
}

// DateKey formats a calendar day as the canonical zero-padded YYYY-MM-DD key.
// month0 is 0-indexed.
func DateKey(year, month0, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month0+1, day)
}

// daysInMonth returns the day count of a 0-indexed month, leap aware.
// Day 0 of the next month is the last day of this one.
func daysInMonth(year, month0 int) int {
	return time.Date(year, time.Month(month0+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// firstWeekday returns the weekday index (Sunday = 0) of day 1.
func firstWeekday(year, month0 int) int {
	return int(time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// MonthTitle renders the 1-indexed display name, e.g. "January 2025".
func MonthTitle(year, month0 int) string {
	return fmt.Sprintf("%s %d", time.Month(month0+1), year)
}

// RenderMonth derives the calendar grid for a 0-indexed month from the three
// source lists. It is pure: identical inputs produce identical output, and no
// annotation state survives between calls. The now argument supplies the
// client's current local date for the Today marker.
func RenderMonth(year, month0 int, events []*entities.Event, ideaDates map[string]struct{}, todos []*entities.Todo, now time.Time) MonthGrid {
	eventsByDay := make(map[string][]*entities.Event)
	for _, ev := range events {
		eventsByDay[ev.Date] = append(eventsByDay[ev.Date], ev)
	}

	todosByDay := make(map[string][]*entities.Todo)
	for _, td := range todos {
		if td.IsScheduled() {
			todosByDay[*td.Date] = append(todosByDay[*td.Date], td)
		}
	}

	leading := firstWeekday(year, month0)
	days := daysInMonth(year, month0)
	todayKey := now.Format(entities.DateKeyLayout)

	grid := MonthGrid{
		Year:          year,
		Month:         month0,
		Title:         MonthTitle(year, month0),
		LeadingBlanks: leading,
		DayCount:      days,
		Cells:         make([]DayCell, 0, leading+days),
	}

	for i := 0; i < leading; i++ {
		grid.Cells = append(grid.Cells, DayCell{})
	}

	for d := 1; d <= days; d++ {
		key := DateKey(year, month0, d)
		cell := DayCell{
			Day:    d,
			Key:    key,
			Today:  key == todayKey,
			Events: eventsByDay[key],
			Todos:  todosByDay[key],
		}

		_, cell.Annotation.HasIdea = ideaDates[key]
		cell.Annotation.HasEvent = len(cell.Events) > 0
		for _, td := range cell.Todos {
			if td.Done {
				cell.Annotation.HasDoneTask = true
			} else {
				cell.Annotation.HasPendingTask = true
			}
		}

		grid.Cells = append(grid.Cells, cell)
	}

	return grid
}

// IdeaDateSet reduces ideas to the set of submission day keys. Any idea by
// any user counts for its date; the calendar is author-agnostic.
func IdeaDateSet(ideas []*entities.Idea) map[string]struct{} {
	set := make(map[string]struct{}, len(ideas))
	for _, idea := range ideas {
		set[idea.CreatedDateKey()] = struct{}{}
	}
	return set
}

// EventCapabilities states which mutations the event contract supports.
// The observed REST contract defines neither update nor delete; rather than
// guess whether that is intentional immutability or a missing feature, both
// are surfaced as explicit flags.
type EventCapabilities struct {
	CanUpdate bool `json:"can_update"`
	CanDelete bool `json:"can_delete"`
}

// EventStoreCapabilities returns the capabilities of the current contract.
func EventStoreCapabilities() EventCapabilities {
	return EventCapabilities{CanUpdate: false, CanDelete: false}
}
