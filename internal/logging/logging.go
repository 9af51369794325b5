package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"
)

var logfile *os.File
var verbose bool
var out io.Writer

func init() {
	log.SetOutput(io.Discard)
	SetOutput(os.Stderr)
}

// Init appends diagnostics to the file at path. An empty path leaves file logging off.
func Init(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	Close()
	logfile = f
	log.SetOutput(f)
	return nil
}

func Close() {
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
		log.SetOutput(io.Discard)
	}
}

// SetOutput redirects console diagnostics, stderr by default. Colours are only used when
// w is a terminal.
func SetOutput(w io.Writer) {
	out = w
	if isTerminal(w) {
		text.EnableColors()
	} else {
		text.DisableColors()
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Writer returns the console diagnostics writer.
func Writer() io.Writer { return out }

func Error(msg string) {
	_, _ = fmt.Fprintln(out, text.FgRed.Sprint(msg))
	log.Println("[ERROR] " + msg)
}

// SetVerbose toggles debug output.
func SetVerbose(v bool) { verbose = v }

func Verbose() bool { return verbose }

// Debug prints only when verbose mode is enabled. The log file always gets it.
func Debug(msg string) {
	log.Println("[DEBUG] " + msg)
	if !verbose {
		return
	}
	_, _ = fmt.Fprintln(out, text.FgHiBlack.Sprint(msg))
}
