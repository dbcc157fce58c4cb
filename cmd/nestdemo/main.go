// nestdemo: a header and a long list sharing one scroll.
// The header scrolls its own text first, then slides out of view, then the
// list takes over. j/k and the mouse wheel walk the whole axis.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/kungfusheep/nestscroll"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// run returns instead of exiting so that deferred closes happen and the
// state file is written before the process goes away.
func run(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("nestdemo", flag.ContinueOnError)
	layoutPath := flags.String("layout", "", "YAML layout file")
	statePath := flags.String("state", "", "file to restore scroll state from and save it to on exit")
	logPath := flags.String("log", "", "write trace logs to this file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	lay, err := loadLayout(*layoutPath)
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger.SetOutput(f)
		logger.SetLevel(logrus.TraceLevel)
	}

	m := newModel(lay, logrus.NewEntry(logger).WithField("component", "nestdemo"))

	if *statePath != "" {
		info, err := readState(*statePath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return err
		default:
			m.pending = info
		}
	}

	if !isTerminal(out) {
		// Piped: print one frame and leave.
		m.resize(80, 24)
		_, err := fmt.Fprintln(out, m.View())
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}

	if *statePath != "" {
		return writeState(*statePath, m.c.SaveScrollInfo())
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func readState(path string) (*nestscroll.ScrollInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return nestscroll.DecodeScrollInfo(f)
}

func writeState(path string, info *nestscroll.ScrollInfo) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := nestscroll.EncodeScrollInfo(f, info); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
