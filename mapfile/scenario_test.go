package mapfile_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jumppoint/mapfile"
)

const sampleScen = `version 1
0	arena.map	49	49	1	11	1	12	1.00000000
3	arena.map	49	49	17	20	29	33	16.97056275

`

func TestReadScenarios(t *testing.T) {
	got, err := mapfile.ReadScenarios(strings.NewReader(sampleScen))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, mapfile.Scenario{
		Bucket: 3, Map: "arena.map", Width: 49, Height: 49,
		Start: [2]int{17, 20}, Goal: [2]int{29, 33}, Optimal: 16.97056275,
	}, got[1])
}

func TestReadScenarios_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"Empty", ""},
		{"NoVersion", "0 a.map 1 1 0 0 0 0 0\n"},
		{"WrongVersion", "version 2\n"},
		{"ShortRow", "version 1\n0 a.map 1 1 0 0 0 0\n"},
		{"BadInt", "version 1\n0 a.map 1 1 x 0 0 0 0\n"},
		{"BadFloat", "version 1\n0 a.map 1 1 0 0 0 0 y\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mapfile.ReadScenarios(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, mapfile.ErrBadScenario)
		})
	}
}

func TestReadScenarios_VersionFloat(t *testing.T) {
	got, err := mapfile.ReadScenarios(strings.NewReader("version 1.0\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScenarios_RoundTrip(t *testing.T) {
	want, err := mapfile.ReadScenarios(strings.NewReader(sampleScen))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mapfile.WriteScenarios(&buf, want))
	got, err := mapfile.ReadScenarios(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	path := filepath.Join(t.TempDir(), "arena.map.scen.zst")
	require.NoError(t, mapfile.SaveScenarios(path, want))
	got, err = mapfile.LoadScenarios(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
