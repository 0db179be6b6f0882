// Package mapfile reads and writes grid maps and benchmark scenarios in the
// MovingAI text formats, optionally compressed.
//
// Map files:
//
//	type octile
//	height 4
//	width 6
//	map
//	..@@..
//	..T...
//	..WW..
//	......
//
// Glyphs map to cell masks: '.' and 'G' are open ground, '@' and 'O' are out
// of bounds (grid.Solid), 'T', 'S' and 'W' require ClassTree, ClassSwamp and
// ClassWater. A query mask built with ClassMask("water") may therefore cross
// 'W' cells while a plain walker (mask 0) may not.
//
// Scenario files start with "version 1" followed by one whitespace-separated
// row per query: bucket, map name, map width, map height, start x, start y,
// goal x, goal y, optimal length.
//
// LoadMap, SaveMap, LoadScenarios and SaveScenarios pick a codec from the file
// extension: ".zst" (zstd), ".lz4" (lz4 frame), ".br" (brotli), anything else
// is plain text.
package mapfile
