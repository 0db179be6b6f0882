package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// scenarioVersion is the only scenario format version understood.
const scenarioVersion = "1"

// Scenario is one benchmark query.
type Scenario struct {
	Bucket  int     // difficulty bucket
	Map     string  // map file name the query was generated for
	Width   int     // map width
	Height  int     // map height
	Start   [2]int  // (x, y)
	Goal    [2]int  // (x, y)
	Optimal float64 // reference path length
}

// ReadScenarios parses a scenario file. Blank lines are skipped.
// Returns ErrBadScenario for a missing version line or a malformed row.
func ReadScenarios(r io.Reader) ([]Scenario, error) {
	sc := bufio.NewScanner(r)
	var out []Scenario
	line := 0
	versionSeen := false
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if !versionSeen {
			if len(fields) != 2 || fields[0] != "version" || !sameVersion(fields[1]) {
				return nil, fmt.Errorf("%w: line %d: want \"version %s\"", ErrBadScenario, line, scenarioVersion)
			}
			versionSeen = true
			continue
		}
		s, err := parseScenario(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadScenario, line, err)
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !versionSeen {
		return nil, fmt.Errorf("%w: empty input", ErrBadScenario)
	}

	return out, nil
}

// sameVersion accepts "1" and "1.0".
func sameVersion(v string) bool {
	f, err := strconv.ParseFloat(v, 64)
	return err == nil && f == 1
}

func parseScenario(fields []string) (Scenario, error) {
	if len(fields) != 9 {
		return Scenario{}, fmt.Errorf("got %d fields, want 9", len(fields))
	}
	var ints [7]int
	for i, idx := range [7]int{0, 2, 3, 4, 5, 6, 7} {
		v, err := strconv.Atoi(fields[idx])
		if err != nil {
			return Scenario{}, fmt.Errorf("field %d: %w", idx+1, err)
		}
		ints[i] = v
	}
	opt, err := strconv.ParseFloat(fields[8], 64)
	if err != nil {
		return Scenario{}, fmt.Errorf("field 9: %w", err)
	}

	return Scenario{
		Bucket:  ints[0],
		Map:     fields[1],
		Width:   ints[1],
		Height:  ints[2],
		Start:   [2]int{ints[3], ints[4]},
		Goal:    [2]int{ints[5], ints[6]},
		Optimal: opt,
	}, nil
}

// WriteScenarios writes scenarios in the tab-separated scenario format.
func WriteScenarios(w io.Writer, scenarios []Scenario) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "version %s\n", scenarioVersion)
	for _, s := range scenarios {
		fmt.Fprintf(bw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
			s.Bucket, s.Map, s.Width, s.Height,
			s.Start[0], s.Start[1], s.Goal[0], s.Goal[1],
			strconv.FormatFloat(s.Optimal, 'f', 8, 64))
	}
	return bw.Flush()
}
