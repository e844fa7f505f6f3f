package commands

import (
	"io"

	"github.com/sirupsen/logrus"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/logging"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/store"
)

// session is everything a command needs once the config is read.
type session struct {
	Config  store.Config
	Disk    *store.Disk
	Log     *logrus.Logger
	Service *app.Service
}

func openSession() (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	log := logging.New(cfg.LogLevel())
	disk, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	return &session{
		Config:  cfg,
		Disk:    disk,
		Log:     log,
		Service: app.New(disk, calendar.New(calendar.SystemClock{}), log),
	}, nil
}

func (s *session) printer(showID bool) *printers.PrettyPrint {
	return &printers.PrettyPrint{ShowID: showID, Calendar: s.Service.Calendar}
}

// emit returns nil when tables were asked for.
func emit(oo *options.OutputOptions) printers.Emit {
	if !oo.Structured() {
		return nil
	}
	return oo.Print
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
