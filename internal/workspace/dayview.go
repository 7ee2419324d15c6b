package workspace

import "github.com/innovatepam/portal/internal/domain/entities"

// DayView is the merged list of ideas, events and todos for one date key.
// Sections keep a fixed order (ideas, events, tasks); an empty section is
// omitted by the renderer, and Empty marks a day with nothing scheduled.
type DayView struct {
	Key    string            `json:"key"`
	Ideas  []*entities.Idea  `json:"ideas,omitempty"`
	Events []*entities.Event `json:"events,omitempty"`
	Todos  []*entities.Todo  `json:"todos,omitempty"`
	Empty  bool              `json:"empty"`
}

// ComposeDay gathers everything scheduled on the given date key. It only
// reads the caches; toggling or deleting a todo is the store's job, the
// composer just reflects whatever state the caches currently hold.
func ComposeDay(key string, ideas []*entities.Idea, events []*entities.Event, todos []*entities.Todo) DayView {
	view := DayView{Key: key}

	for _, idea := range ideas {
		if idea.CreatedDateKey() == key {
			view.Ideas = append(view.Ideas, idea)
		}
	}
	for _, ev := range events {
		if ev.Date == key {
			view.Events = append(view.Events, ev)
		}
	}
	for _, td := range todos {
		if td.IsScheduled() && *td.Date == key {
			view.Todos = append(view.Todos, td)
		}
	}

	view.Empty = len(view.Ideas) == 0 && len(view.Events) == 0 && len(view.Todos) == 0
	return view
}
