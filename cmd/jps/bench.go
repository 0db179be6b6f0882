package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/katalvlaran/jumppoint/batch"
	"github.com/katalvlaran/jumppoint/mapfile"
)

func runBench(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		lf       logFlags
		mapPath  = fs.String("map", "", "map file")
		scenPath = fs.String("scen", "", "scenario file (.scen, optionally compressed)")
		workers  = fs.Int("workers", runtime.GOMAXPROCS(0), "concurrent searches")
		classes  = fs.String("classes", "", "comma-separated traversal classes: "+strings.Join(mapfile.ClassNames(), ", "))
		baseline = fs.Bool("baseline", false, "also run the uniform-cost baseline and compare")
	)
	lf.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *mapPath == "" || *scenPath == "" {
		return fmt.Errorf("%w: -map and -scen are required", errUsage)
	}

	logger, err := lf.logger(stderr)
	if err != nil {
		return err
	}
	mask, err := mapfile.ClassMask(splitList(*classes)...)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	g, err := mapfile.LoadMap(*mapPath)
	if err != nil {
		return err
	}
	scenarios, err := mapfile.LoadScenarios(*scenPath)
	if err != nil {
		return err
	}

	opts := []batch.Option{batch.WithWorkers(*workers), batch.WithMask(mask), batch.WithLogger(logger)}
	if *baseline {
		opts = append(opts, batch.WithBaseline())
	}
	out, err := batch.Run(ctx, g, scenarios, opts...)
	if err != nil {
		return err
	}

	s := batch.Summarize(out)
	fmt.Fprintf(stdout, "scenarios=%d found=%d blocked=%d failed=%d\n", s.Total, s.Found, s.Blocked, s.Failed)
	fmt.Fprintf(stdout, "cost=%.4f expanded=%d search_time=%s\n", s.Cost, s.Expanded, s.Duration)
	if *baseline {
		fmt.Fprintf(stdout, "baseline_expanded=%d baseline_time=%s speedup=%.2fx mismatches=%d\n",
			s.BaselineExpanded, s.BaselineDuration, s.Speedup(), s.Mismatches)
	}

	return nil
}
