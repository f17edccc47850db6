package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"

	"github.com/fatih/color"
	"github.com/milk9111/motion/anim"
	"github.com/milk9111/motion/choreo"
	"github.com/spf13/cobra"
)

func addPlay(topLevel *cobra.Command) {
	var watch bool

	cmd := &cobra.Command{
		Use:   "play <file> <sequence>",
		Short: "Play a sequence against printing targets",
		Example: `
choreo play demo intro
choreo play demo notify --dir ./choreo --watch
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if watch && cfg.Dir == "" {
				return errors.New("--watch needs --dir")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			p, err := newPlayer(cfg, cmd.OutOrStdout(), cfg.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			return p.run(ctx, args[0], args[1], watch)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "Replay the sequence whenever its file changes.")

	topLevel.AddCommand(cmd)
}

type player struct {
	lib   *choreo.Library
	sched *anim.Scheduler
	stage *stage
	log   *slog.Logger

	mu  sync.Mutex
	seq *anim.Sequence
}

func newPlayer(cfg *config, out io.Writer, log *slog.Logger, opts ...anim.Option) (*player, error) {
	lib, err := choreo.OpenLibrary(cfg.Dir, nil, log)
	if err != nil {
		return nil, err
	}
	base := []anim.Option{
		anim.WithInterval(cfg.Tick),
		anim.WithLogger(log),
		anim.WithEasings(lib.Registry()),
	}
	return &player{
		lib:   lib,
		sched: anim.New(append(base, opts...)...),
		stage: newStage(out),
		log:   log,
	}, nil
}

func (p *player) run(ctx context.Context, file, sequence string, watch bool) error {
	seq, err := p.start(file, sequence)
	if err != nil {
		return err
	}
	defer p.sched.StopAll()

	if !watch {
		st, err := seq.Wait(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if st == anim.Cancelled {
			return err
		}
		return nil
	}

	p.stage.println(color.New(color.Faint).Sprintf("watching %s", p.lib.Dir()))
	return p.lib.Watch(ctx, func(name string, err error) {
		if err != nil {
			p.stage.println(color.New(color.FgRed).Sprintf("reload %s: %v", name, err))
			return
		}
		p.sched.StopAll()
		if _, err := p.start(file, sequence); err != nil {
			p.stage.println(color.New(color.FgRed).Sprint(err))
		}
	})
}

// start replaces the current run of sequence with a fresh one.
func (p *player) start(file, sequence string) (*anim.Sequence, error) {
	f, err := p.lib.File(file)
	if err != nil {
		return nil, err
	}
	specs, err := f.Sequence(sequence, p.stage.resolve)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.seq != nil {
		p.seq.Cancel()
	}
	p.stage.println(color.New(color.Bold).Sprintf("> %s/%s", f.Name, sequence))

	seq, err := p.sched.StartSequence(specs, func(*anim.Sequence) {
		p.stage.println(color.New(color.FgGreen).Sprintf("done %s", sequence))
	})
	if err != nil {
		return nil, err
	}
	p.seq = seq
	p.log.Debug("sequence started", "file", f.Name, "sequence", sequence, "id", seq.ID())
	return seq, nil
}
