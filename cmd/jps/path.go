package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/jumppoint/dijkstra"
	"github.com/katalvlaran/jumppoint/heuristic"
	"github.com/katalvlaran/jumppoint/jps"
	"github.com/katalvlaran/jumppoint/mapfile"
)

func runPath(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("path", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		lf       logFlags
		mapPath  = fs.String("map", "", "map file (.map, .map.zst, .map.lz4, .map.br)")
		from     = fs.String("from", "", "start cell x,y")
		to       = fs.String("to", "", "finish cell x,y")
		classes  = fs.String("classes", "", "comma-separated traversal classes: "+strings.Join(mapfile.ClassNames(), ", "))
		hName    = fs.String("heuristic", "euclidean", "heuristic: "+strings.Join(heuristic.Names(), ", "))
		draw     = fs.Bool("draw", false, "draw the map with the path")
		baseline = fs.Bool("baseline", false, "also run the uniform-cost baseline")
	)
	lf.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *mapPath == "" || *from == "" || *to == "" {
		return fmt.Errorf("%w: -map, -from and -to are required", errUsage)
	}

	logger, err := lf.logger(stderr)
	if err != nil {
		return err
	}
	start, err := parsePoint(*from)
	if err != nil {
		return err
	}
	finish, err := parsePoint(*to)
	if err != nil {
		return err
	}
	mask, err := mapfile.ClassMask(splitList(*classes)...)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	h, err := heuristic.ByName(*hName)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	g, err := mapfile.LoadMap(*mapPath)
	if err != nil {
		return err
	}
	s, f := g.Node(start[0], start[1]), g.Node(finish[0], finish[1])
	if s == nil || f == nil {
		return fmt.Errorf("%w: endpoint outside the %dx%d map", errUsage, g.Width, g.Height)
	}

	res, err := jps.FindPath(g, s, f, mask, jps.WithHeuristic(h), jps.WithLogger(logger.WithGrid(g)))
	fmt.Fprintf(stdout, "status=%s cost=%.4f length=%d expanded=%d jumps=%d\n",
		res.Status, res.Cost, len(res.Path), res.Expanded, res.Jumps)
	if err != nil && !errors.Is(err, jps.ErrBlocked) {
		return err
	}
	if res.Status.Found() {
		points := make([]string, len(res.Path))
		for i, n := range res.Path {
			points[i] = fmt.Sprintf("%d,%d", n.X, n.Y)
		}
		fmt.Fprintln(stdout, strings.Join(points, " "))
		if *draw {
			if err := mapfile.Draw(stdout, g, res.Path); err != nil {
				return err
			}
		}
	}

	if *baseline {
		base, err := dijkstra.ShortestPath(g, s, f, mask)
		switch {
		case errors.Is(err, dijkstra.ErrNoPath):
			fmt.Fprintf(stdout, "baseline: no path expanded=%d\n", base.Expanded)
		case err != nil:
			return err
		default:
			fmt.Fprintf(stdout, "baseline: cost=%.4f length=%d expanded=%d\n",
				base.Cost, len(base.Path), base.Expanded)
		}
	}

	return nil
}
