package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

// setupLogging configures the standard logrus logger for a run.
// Colours are enabled only when w is a terminal.
func setupLogging(w io.Writer, level, format string, verbose bool) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	if verbose {
		lvl = log.DebugLevel
	}
	log.SetLevel(lvl)
	log.SetOutput(w)

	if format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
		return nil
	}
	tty := isTerminal(w)
	log.SetFormatter(&log.TextFormatter{
		ForceColors:   tty,
		DisableColors: !tty,
		FullTimestamp: true,
	})

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
