// Command jps runs jump point searches on MovingAI maps.
//
// Usage:
//
//	jps path  -map FILE -from X,Y -to X,Y [-classes water,tree] [-heuristic octile] [-draw] [-baseline]
//	jps bench -map FILE -scen FILE [-workers N] [-classes ...] [-baseline]
//	jps serve -maps DIR [-addr :8080] [-rps N] [-burst N] [-mem BYTES]
//
// Every subcommand accepts -log-level (debug, info, warn, error) and
// -log-format (text, json). Logs go to stderr, results to stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/katalvlaran/jumppoint/jps"
)

// errUsage marks command-line mistakes; main exits with status 2 for them.
var errUsage = errors.New("usage error")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "jps:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run dispatches to a subcommand.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "usage: jps <path|bench|serve> [flags]")
		return fmt.Errorf("%w: missing subcommand", errUsage)
	}
	switch args[0] {
	case "path":
		return runPath(args[1:], stdout, stderr)
	case "bench":
		return runBench(ctx, args[1:], stdout, stderr)
	case "serve":
		return runServe(ctx, args[1:], stderr)
	default:
		return fmt.Errorf("%w: unknown subcommand %q", errUsage, args[0])
	}
}

// logFlags are shared by every subcommand.
type logFlags struct {
	level  string
	format string
}

func (l *logFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&l.level, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&l.format, "log-format", "text", "log format: text, json")
}

func (l *logFlags) logger(w io.Writer) (*jps.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.level)); err != nil {
		return nil, fmt.Errorf("%w: -log-level %q", errUsage, l.level)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch l.format {
	case "text":
		return jps.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return jps.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: -log-format %q", errUsage, l.format)
	}
}

// parseFlags parses args and turns flag errors into usage errors.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	return nil
}

// parsePoint parses "x,y".
func parsePoint(s string) ([2]int, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return [2]int{}, fmt.Errorf("%w: point %q is not x,y", errUsage, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return [2]int{}, fmt.Errorf("%w: point %q is not x,y", errUsage, s)
	}
	return [2]int{x, y}, nil
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
