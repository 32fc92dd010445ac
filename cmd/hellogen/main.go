package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"golang.org/x/sys/unix"

	"github.com/sublee/hellogen/internal/codefmt"
	hellogeninternal "github.com/sublee/hellogen/internal/hellogen"
	"github.com/sublee/hellogen/internal/hellogen/discover"
	"github.com/sublee/hellogen/internal/hellogen/filer"
)

var Version = "dev"

var (
	bFlag = flag.String("b", "", "comma-separated build tags")
	tFlag = flag.Bool("t", false, "include tests")
	dFlag = flag.String("d", ".", "generated sources root directory")
	oFlag = flag.String("o", filer.DefaultFileName, "output file name")
	nFlag = flag.Bool("n", false, "do not replace a file generated by an earlier build")
	sFlag = flag.Bool("s", false, "sort marked declarations by name")
	cFlag = flag.String("c", "auto", "colorize (auto|always|never)")
	vFlag = flag.Bool("v", false, "verbose")
)

func init() {
	hellogeninternal.Version = Version
}

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *vFlag {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	color := false
	switch *cFlag {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		fmt.Fprintln(os.Stderr, "invalid -c value:", *cFlag)
		os.Exit(1)
	}

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	out := &filer.Dir{Root: *dFlag, FileName: *oFlag, NoClobber: *nFlag}

	res, err := hellogeninternal.Main(context.Background(), wd, os.Environ(), *bFlag, *tFlag, *sFlag, patterns, out)
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		os.Exit(1)
	}

	for _, d := range res.Dangling {
		slog.Warn(discover.DanglingMessage, "pos", codefmt.FormatPosition(d.Position()), "func", d.Func)
	}
	for _, d := range res.Decls {
		slog.Debug("marked", "name", d.Name(), "kind", d.Kind(), "pos", codefmt.FormatPosition(d.Position()))
	}

	if !res.Written {
		return
	}

	path, err := out.Path(res.Artifact.Name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if relPath, err := filepath.Rel(wd, path); err == nil {
		path = relPath
	}
	fmt.Println("Generated:", path)
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

// rePos matches the "file:line:col:" prefix of a positioned error line.
var rePos = regexp.MustCompile(`(?m)^[^\s:]+:\d+:\d+:`)

// colorize adds ANSI color codes to the message. Positions are dimmed and the
// rest is red.
func colorize(message string) string {
	const (
		red   = "\033[31m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	m := rePos.ReplaceAllStringFunc(message, func(s string) string {
		return dim + s + reset + red
	})
	return red + m + reset
}
