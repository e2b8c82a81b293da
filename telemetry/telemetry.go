// Package telemetry records per-tick simulation statistics to CSV.
package telemetry

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/hevezolly/fallingsand/element"
)

// TickStats is one row of per-tick telemetry.
type TickStats struct {
	Tick            int64   `csv:"tick"`
	DurationMillis  float64 `csv:"duration_ms"`
	ChunkCount      int     `csv:"chunk_count"`
	SandCount       int     `csv:"sand_count"`
	WetSandCount    int     `csv:"wet_sand_count"`
	WaterCount      int     `csv:"water_count"`
	OilCount        int     `csv:"oil_count"`
	AcidCount       int     `csv:"acid_count"`
	BlockCount      int     `csv:"block_count"`
	DeferredActions int     `csv:"deferred_actions"`
}

// CountByKind tallies counts[kind] into the matching TickStats field.
func (s *TickStats) CountByKind(counts map[element.Kind]int) {
	s.SandCount = counts[element.KindSand]
	s.WetSandCount = counts[element.KindWetSand]
	s.WaterCount = counts[element.KindWater]
	s.OilCount = counts[element.KindOil]
	s.AcidCount = counts[element.KindAcid]
	s.BlockCount = counts[element.KindBlock]
}

// Recorder appends TickStats rows to a CSV file, writing the header once on
// the first write. A nil Recorder obtained via NewRecorder("") is a no-op:
// telemetry is disabled when no output path is configured.
type Recorder struct {
	file          *os.File
	headerWritten bool
}

// NewRecorder opens path for writing, truncating any existing file. If path
// is empty, the returned Recorder is nil and every method on it is a no-op.
func NewRecorder(path string) (*Recorder, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating telemetry file: %w", err)
	}
	return &Recorder{file: f}, nil
}

// Write appends one row of stats.
func (r *Recorder) Write(stats TickStats) error {
	if r == nil {
		return nil
	}
	records := []TickStats{stats}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.file); err != nil {
			return fmt.Errorf("writing telemetry row: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.file); err != nil {
		return fmt.Errorf("writing telemetry row: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	return r.file.Close()
}
