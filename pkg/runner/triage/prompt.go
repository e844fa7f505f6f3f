package triage

import (
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/daybook/pkg/midnight"
	"tableflip.dev/daybook/pkg/task"
)

type option struct {
	Name   string
	Detail string
	zone   task.Zone
	pick   bool
}

var topLevel = []option{
	{Name: "today", Detail: "move them all to today", zone: task.ZoneToday},
	{Name: "tomorrow", Detail: "move them all to tomorrow", zone: task.ZoneTomorrow},
	{Name: "bank", Detail: "bank them all for later", zone: task.ZoneBank},
	{Name: "pick", Detail: "decide task by task", pick: true},
	{Name: "dismiss", Detail: "leave them overdue"},
}

var perTask = []option{
	{Name: "today", Detail: "do it today", zone: task.ZoneToday},
	{Name: "tomorrow", Detail: "do it tomorrow", zone: task.ZoneTomorrow},
	{Name: "bank", Detail: "bank it for later", zone: task.ZoneBank},
	{Name: "skip", Detail: "leave it overdue"},
}

// PromptChooser asks with promptui select menus.
type PromptChooser struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

func (p *PromptChooser) selectFrom(label string, items []option) (option, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Detail | green }}",
		Inactive: "   {{ .Name }} {{ .Detail | cyan }}",
		Selected: "{{ .Name | bold }}",
	}

	searcher := func(input string, index int) bool {
		name := strings.ToLower(items[index].Name)
		return strings.Contains(name, strings.ToLower(strings.TrimSpace(input)))
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      len(items),
		Searcher:  searcher,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return option{}, err
	}
	return items[i], nil
}

// Choose implements Chooser.
func (p *PromptChooser) Choose(d midnight.Decision) (Choice, error) {
	top, err := p.selectFrom("What about the overdue tasks", topLevel)
	if err != nil {
		return Choice{}, err
	}
	if !top.pick {
		return Choice{All: top.zone}, nil
	}

	moves := make(map[task.Zone][]string)
	for _, t := range d.Overdue {
		o, err := p.selectFrom(fmt.Sprintf("%s (%s)", t.Title, t.Date), perTask)
		if err != nil {
			return Choice{}, err
		}
		if o.zone != "" {
			moves[o.zone] = append(moves[o.zone], t.ID)
		}
	}
	return Choice{Moves: moves}, nil
}
