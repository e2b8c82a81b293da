// Package main is the entry point for the falling-sand simulation's demo
// harness. It seeds a scene, drives the tick loop, and either prints
// headless statistics or opens an Ebiten window to watch the simulation
// live.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/hevezolly/fallingsand/config"
	"github.com/hevezolly/fallingsand/field"
	"github.com/hevezolly/fallingsand/telemetry"
)

// parsePositionalArgsIntoFlags parses the 5 positional arguments into
// configuration flags, returning true if exactly 5 were provided.
//
// Expected argument order: [Scene] [Ticks] [ChunkBoundsWidth] [ChunkBoundsHeight] [Threads]
func parsePositionalArgsIntoFlags(scene *string, ticks, width, height, threads *int) bool {
	args := flag.Args()
	if len(args) != 5 {
		return false
	}

	toInt := func(s string) int {
		v, _ := strconv.Atoi(s)
		return v
	}

	*scene = args[0]
	*ticks = toInt(args[1])
	*width = toInt(args[2])
	*height = toInt(args[3])
	*threads = toInt(args[4])
	return true
}

func main() {
	scene := flag.String("scene", "random", "scene to seed: column, displacement, acid, random")
	ticks := flag.Int("ticks", 200, "number of ticks to run in headless mode")
	width := flag.Int("width", 0, "chunk bounds width override (0 = use config)")
	height := flag.Int("height", 0, "chunk bounds height override (0 = use config)")
	threads := flag.Int("threads", 0, "worker pool size override (0 = use config)")
	mode := flag.String("mode", "par", "seq or par: seq forces a single-threaded worker pool")

	configPath := flag.String("config", "", "path to a YAML config file (optional, merges over embedded defaults)")
	telemetryPath := flag.String("telemetry", "", "override the telemetry CSV output path")

	gui := flag.Bool("gui", false, "show an Ebiten window instead of running headless")
	nogui := flag.Bool("nogui", false, "force disable the GUI even if -gui is set")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for scene seeding and tick RNG")
	statsEvery := flag.Int("statsEvery", 20, "print stats every N ticks in headless mode (0 = never)")
	quiet := flag.Bool("quiet", false, "suppress console stats prints")

	flag.Parse()

	_ = parsePositionalArgsIntoFlags(scene, ticks, width, height, threads)

	if *nogui {
		*gui = false
	}
	if *threads < 0 {
		log.Fatalf("threads must be >= 0, got %d", *threads)
	}
	if *ticks < 0 {
		log.Fatalf("ticks must be >= 0, got %d", *ticks)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *width > 0 {
		cfg.World.ChunkBoundsWidth = *width
	}
	if *height > 0 {
		cfg.World.ChunkBoundsHeight = *height
	}
	if *threads > 0 {
		cfg.World.Threads = *threads
	}
	if *mode == "seq" {
		cfg.World.Threads = 1
	}
	if *telemetryPath != "" {
		cfg.Telemetry.OutputPath = *telemetryPath
	}

	f := config.NewField(cfg)
	rng := field.NewRNG(*seed)
	seedScene(*scene, f, cfg, rng)

	rec, err := telemetry.NewRecorder(cfg.Telemetry.OutputPath)
	if err != nil {
		log.Fatalf("opening telemetry recorder: %v", err)
	}
	defer rec.Close()

	if !*quiet {
		fmt.Printf("CFG scene=%s ticks=%d bounds=%dx%d threads=%d mode=%s gui=%t seed=%d\n",
			*scene, *ticks, cfg.World.ChunkBoundsWidth, cfg.World.ChunkBoundsHeight, cfg.World.Threads, *mode, *gui, *seed)
	}

	if *gui {
		if err := runGUI(f, cfg, *seed); err != nil {
			log.Fatalf("gui: %v", err)
		}
		return
	}

	if err := runHeadless(context.Background(), f, *ticks, *seed, rec, *statsEvery, *quiet); err != nil {
		log.Fatalf("headless run: %v", err)
	}
}
