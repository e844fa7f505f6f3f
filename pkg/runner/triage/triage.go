// Package triage runs the focus flow: reconcile the task zones, ask the
// midnight gate, and when overdue tasks are waiting, let the user decide
// where they go.
package triage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/midnight"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/task"
)

// Choice is what the user decided for the overdue set. A zero Choice
// dismisses the prompt without moving anything.
type Choice struct {
	// All moves every overdue task to this zone.
	All task.Zone
	// Moves lists individual tasks per target zone.
	Moves map[task.Zone][]string
}

// Chooser asks the user what to do with the overdue tasks.
type Chooser interface {
	Choose(d midnight.Decision) (Choice, error)
}

// Triage is the prompt presenter.
type Triage struct {
	Service *app.Service
	Printer *printers.PrettyPrint

	// Chooser defaults to a promptui menu on Stdin and Stdout.
	Chooser Chooser
	Stdin   io.ReadCloser
	Stdout  io.WriteCloser

	// Interactive prompts even when stdin is not a terminal.
	Interactive bool
	// IsTerminal reports whether prompting is possible; defaults to
	// checking os.Stdin.
	IsTerminal func() bool

	// Result is the focus outcome, for structured output.
	Result app.FocusResult
}

func (t *Triage) terminal() bool {
	if t.Interactive {
		return true
	}
	if t.IsTerminal != nil {
		return t.IsTerminal()
	}
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (t *Triage) chooser() Chooser {
	if t.Chooser != nil {
		return t.Chooser
	}
	return &PromptChooser{Stdin: t.Stdin, Stdout: t.Stdout}
}

// Do runs focus and, when the gate says so, the triage prompt. Closing or
// interrupting the prompt leaves the triage pending for the next focus.
func (t *Triage) Do(ctx context.Context) error {
	if t.Service == nil {
		return errors.New("can not triage, no service")
	}
	res, err := t.Service.Focus(ctx)
	if err != nil {
		return err
	}
	t.Result = res

	if res.Decision.Action != midnight.ActionTriage {
		if t.Printer != nil {
			t.Printer.Tasks("Today", task.Filter(res.Tasks, task.ViewToday))
		}
		return nil
	}

	if t.Printer != nil {
		t.Printer.Triage(res.Decision)
	}
	if !t.terminal() {
		if t.Printer != nil {
			faint := color.New(color.Faint)
			_, _ = faint.Fprintln(color.Output, "run `daybook triage` to sort these out")
		}
		return nil
	}

	choice, err := t.chooser().Choose(res.Decision)
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return nil
	}
	if err != nil {
		return err
	}
	return t.Apply(ctx, res.Decision, choice)
}

// Apply carries out a choice. Every path ends acknowledged, so the prompt
// does not come back today.
func (t *Triage) Apply(ctx context.Context, d midnight.Decision, c Choice) error {
	if c.All != "" {
		if _, err := t.Service.ReassignAll(ctx, d, c.All); err != nil {
			return err
		}
		t.report(len(d.Overdue), c.All)
		return nil
	}

	moved := 0
	for _, zone := range []task.Zone{task.ZoneToday, task.ZoneTomorrow, task.ZoneBank} {
		ids := c.Moves[zone]
		if len(ids) == 0 {
			continue
		}
		if _, err := t.Service.Reassign(ctx, ids, zone); err != nil {
			return err
		}
		t.report(len(ids), zone)
		moved += len(ids)
	}
	if moved == 0 {
		if _, err := t.Service.Acknowledge(ctx); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, "dismissed, overdue tasks stay where they are")
	}
	return nil
}

func (t *Triage) report(n int, zone task.Zone) {
	noun := "tasks"
	if n == 1 {
		noun = "task"
	}
	_, _ = fmt.Fprintf(color.Output, "moved %d %s to %s\n", n, noun, zone)
}
