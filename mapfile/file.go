package mapfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/jumppoint/grid"
)

// LoadMap reads the map at path, decompressing by extension.
func LoadMap(path string) (*grid.Grid, error) {
	var g *grid.Grid
	err := readFile(path, func(r io.Reader) error {
		var err error
		g, err = ReadMap(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// SaveMap writes g to path, compressing by extension.
func SaveMap(path string, g *grid.Grid) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteMap(w, g)
	})
}

// LoadScenarios reads the scenario file at path, decompressing by extension.
func LoadScenarios(path string) ([]Scenario, error) {
	var out []Scenario
	err := readFile(path, func(r io.Reader) error {
		var err error
		out, err = ReadScenarios(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SaveScenarios writes scenarios to path, compressing by extension.
func SaveScenarios(path string, scenarios []Scenario) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteScenarios(w, scenarios)
	})
}

func readFile(path string, decode func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := NewReader(f, CompressionFor(path))
	if err != nil {
		return fmt.Errorf("mapfile: %s: %w", path, err)
	}
	defer r.Close()

	if err := decode(r); err != nil {
		return fmt.Errorf("mapfile: %s: %w", path, err)
	}
	return nil
}

func writeFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	w, err := NewWriter(f, CompressionFor(path))
	if err != nil {
		return fmt.Errorf("mapfile: %s: %w", path, err)
	}
	if err := encode(w); err != nil {
		w.Close()
		return fmt.Errorf("mapfile: %s: %w", path, err)
	}
	return w.Close()
}
