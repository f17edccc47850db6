package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/motion/anim"
	"github.com/milk9111/motion/choreo"
)

func main() {
	dir := flag.String("dir", "", "directory of choreography files (embedded defaults when empty)")
	file := flag.String("file", "demo", "choreography file to play")
	tick := flag.Duration("tick", anim.DefaultInterval, "scheduler tick interval")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	lib, err := choreo.OpenLibrary(*dir, nil, logger)
	if err != nil {
		log.Fatal(err)
	}
	sched := anim.New(
		anim.WithInterval(*tick),
		anim.WithLogger(logger),
		anim.WithEasings(lib.Registry()),
	)

	game, err := NewGame(lib, *file, sched)
	if err != nil {
		log.Fatal(err)
	}

	if *dir != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := lib.Watch(ctx, game.reloaded); err != nil {
				logger.Warn("watch stopped", "err", err)
			}
		}()
	}

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("motion demo")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	sched.StopAll()
}
