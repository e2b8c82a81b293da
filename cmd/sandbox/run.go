package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hevezolly/fallingsand/element"
	"github.com/hevezolly/fallingsand/field"
	"github.com/hevezolly/fallingsand/telemetry"
)

// runHeadless advances f for the given number of ticks with no rendering,
// writing one telemetry row per tick (a no-op if rec is nil) and optionally
// printing per-element counts every statsEvery ticks.
func runHeadless(ctx context.Context, f *field.Field, ticks int, seed int64, rec *telemetry.Recorder, statsEvery int, quiet bool) error {
	for i := 0; i < ticks; i++ {
		start := time.Now()
		deferred, err := f.Update(ctx, seed+int64(i))
		if err != nil {
			return fmt.Errorf("tick %d: %w", i, err)
		}
		duration := time.Since(start)

		stats := telemetry.TickStats{
			Tick:            int64(i),
			DurationMillis:  float64(duration.Microseconds()) / 1000,
			ChunkCount:      len(f.Chunks()),
			DeferredActions: deferred,
		}
		stats.CountByKind(f.CountByKind())
		if err := rec.Write(stats); err != nil {
			return fmt.Errorf("tick %d: writing telemetry: %w", i, err)
		}

		if !quiet && statsEvery > 0 && i%statsEvery == 0 {
			counts := f.CountByKind()
			fmt.Printf("tick=%04d chunks=%3d sand=%4d water=%4d oil=%4d acid=%4d dur=%s\n",
				i, stats.ChunkCount, counts[element.KindSand], counts[element.KindWater], counts[element.KindOil], counts[element.KindAcid], duration)
		}
	}
	return nil
}
