package options

import (
	"errors"
	"testing"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/task"
)

func TestGetOn(t *testing.T) {
	cal := calendar.New(calendar.FixedDate("2025-03-11"))
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"2025-2-28", "2025-02-28"},
		{"2025-02-03", "2025-02-03"},
		{"12/5", "2025-12-05"},
		{"3/11", "2025-03-11"},
		// Already gone this year, so next year.
		{"2/28", "2026-02-28"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			o := &OnOptions{OnString: tt.in}
			got, err := o.GetOn(cal)
			if err != nil {
				t.Fatalf("GetOn(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("GetOn(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	o := &OnOptions{OnString: "tomorrowish"}
	if _, err := o.GetOn(cal); !errors.Is(err, calendar.ErrMalformedDate) {
		t.Errorf("GetOn(bad) error = %v, want ErrMalformedDate", err)
	}
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		o    OutputOptions
		want string
	}{
		{OutputOptions{}, ""},
		{OutputOptions{JSON: true}, printers.FormatJSON},
		{OutputOptions{Output: " YAML "}, printers.FormatYAML},
		{OutputOptions{JSON: true, Output: "yaml"}, printers.FormatJSON},
	}
	for _, tt := range tests {
		if got := tt.o.Format(); got != tt.want {
			t.Errorf("%+v.Format() = %q, want %q", tt.o, got, tt.want)
		}
	}

	plain := &OutputOptions{}
	boom := errors.New("boom")
	if err := plain.HandleError(boom); err != boom {
		t.Errorf("HandleError() = %v, want the error back for tables", err)
	}
}

func TestGetZone(t *testing.T) {
	o := &ZoneOptions{}
	if z, err := o.GetZone(); err != nil || z != "" {
		t.Errorf("GetZone() = %q, %v, want empty", z, err)
	}
	o.Zone = "bank"
	if z, err := o.GetZone(); err != nil || z != task.ZoneBank {
		t.Errorf("GetZone() = %q, %v, want bank", z, err)
	}
	o.Zone = "someday"
	if _, err := o.GetZone(); err == nil {
		t.Errorf("GetZone(someday) should fail")
	}
}

func TestWindowDays(t *testing.T) {
	o := &WindowOptions{}
	if d, err := o.Days(); err != nil || d != -1 {
		t.Errorf("Days() = %d, %v, want -1", d, err)
	}
	o.DueWithin = "1w"
	if d, err := o.Days(); err != nil || d != 7 {
		t.Errorf("Days() = %d, %v, want 7", d, err)
	}
}
