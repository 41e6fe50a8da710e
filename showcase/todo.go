package showcase

import (
	"slices"

	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/engine"
	"github.com/go-drift/reflex/pkg/style"
	"github.com/go-drift/reflex/pkg/widgets"
)

type (
	// AddTask appends a task.
	AddTask string
	// RemoveTask removes the first task with this text.
	RemoveTask string
)

// Todo is a task list with an entry row.
type Todo struct {
	Tasks []string
	input *string
}

// NewTodo returns an empty task list.
func NewTodo() engine.Application {
	return &Todo{input: new(string)}
}

func (t *Todo) Title() string { return "TodoApp" }

func (t *Todo) Update(msg core.Message) {
	switch msg := msg.(type) {
	case AddTask:
		if msg != "" {
			t.Tasks = append(t.Tasks, string(msg))
		}
	case RemoveTask:
		if i := slices.Index(t.Tasks, string(msg)); i >= 0 {
			t.Tasks = slices.Delete(t.Tasks, i, i+1)
		}
	}
}

func (t *Todo) View() core.Widget {
	add := func() core.Message { return AddTask(*t.input) }
	left := widgets.Align(style.AlignLeft | style.AlignInside)

	rows := make([]core.Widget, 0, len(t.Tasks))
	for _, task := range t.Tasks {
		rows = append(rows, widgets.RowOf(
			widgets.BoxOf(task).With(left),
			widgets.CheckButtonOf("", core.Emit(RemoveTask(task))).
				WithValue(true).
				With(widgets.Fixed(30), left),
		).With(widgets.Sized(0, 30)))
	}

	return widgets.ColumnOf(
		widgets.RowOf(
			widgets.InputOf(t.input).WithTrigger(add),
			widgets.ButtonOf("@>", add).With(widgets.Fixed(30)),
		).With(widgets.Fixed(30)),
		widgets.ScrollOf(widgets.PackOf(rows...).Vertical()).WithFill(0),
	).WithMargins(30, 20, 30, 20)
}
