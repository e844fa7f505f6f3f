// Package tasks provides the runners behind the task commands.
package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/task"
)

var errNoService = errors.New("no service")

// Add creates a task.
type Add struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	Emit    printers.Emit
	Task    app.NewTask
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	t, err := n.Service.AddTask(ctx, n.Task)
	if err != nil {
		return err
	}
	if n.Emit != nil {
		return n.Emit(t)
	}
	n.Printer.Tasks(string(t.Zone), n.Service.TaskList(ctx, task.View(t.Zone)))
	return nil
}

// List shows one view of the tasks, reconciling first so zones are current.
type List struct {
	Service *app.Service
	Printer *printers.PrettyPrint
	Emit    printers.Emit
	View    task.View
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	res, err := n.Service.Focus(ctx)
	if err != nil {
		return err
	}
	tasks := task.Filter(res.Tasks, n.View)
	if n.Emit != nil {
		return n.Emit(tasks)
	}
	n.Printer.Tasks(string(n.View), tasks)
	n.Printer.Triage(res.Decision)
	return nil
}

// Done toggles completion.
type Done struct {
	Service *app.Service
	Emit    printers.Emit
	ID      string
}

func (n *Done) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	t, err := n.Service.ToggleTask(ctx, n.ID)
	if err != nil {
		return err
	}
	if n.Emit != nil {
		return n.Emit(t)
	}
	state := "open again"
	if t.Completed {
		state = "done"
	}
	_, _ = fmt.Fprintf(color.Output, "%s is %s\n", t.Title, state)
	return nil
}

// Delete removes a task.
type Delete struct {
	Service *app.Service
	ID      string
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	if err := n.Service.DeleteTask(ctx, n.ID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "deleted %s\n", n.ID)
	return nil
}

// Purge removes all completed tasks.
type Purge struct {
	Service *app.Service
	Emit    printers.Emit
}

func (n *Purge) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	count := n.Service.PurgeCompleted(ctx)
	if n.Emit != nil {
		return n.Emit(map[string]int{"purged": count})
	}
	_, _ = fmt.Fprintf(color.Output, "purged %d completed tasks\n", count)
	return nil
}
