package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/sling/audio"
	"github.com/lixenwraith/sling/config"
	"github.com/lixenwraith/sling/engine"
	"github.com/lixenwraith/sling/event"
	"github.com/lixenwraith/sling/journal"
	"github.com/lixenwraith/sling/render"
	"github.com/lixenwraith/sling/service"
	"github.com/lixenwraith/sling/status"
)

// PlayCmd runs the interactive terminal demo
type PlayCmd struct {
	Config  string `help:"TOML config file, hot-reloaded while running" type:"existingfile" short:"c" env:"SLING_CONFIG"`
	Mute    bool   `help:"Disable audio cues" short:"m"`
	Journal string `help:"Record finished sessions to this SQLite file" type:"path" short:"j" env:"SLING_JOURNAL"`
	FPS     int    `help:"Frame rate override, 0 keeps the config value" name:"fps"`
}

// Run executes the play command
func (p *PlayCmd) Run(cli *CLI) error {
	cfg, _, err := config.Load(p.Config)
	if err != nil {
		return err
	}
	if p.FPS > 0 {
		cfg.Engine.FrameRate = p.FPS
	}

	runID := uuid.New()
	log.Info().
		Str("run", runID.String()).
		Str("config", p.Config).
		Str("journal", p.Journal).
		Int("fps", cfg.Engine.FrameRate).
		Msg("Starting sling")

	reg := status.NewRegistry()
	tel, err := setupTelemetry(reg, runID)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		tel.logSnapshot(ctx)
		if err := tel.shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("Telemetry shutdown failed")
		}
	}()

	hub, g, err := p.assemble(cfg, reg)
	if err != nil {
		return err
	}
	if err := hub.InitAll(); err != nil {
		return fmt.Errorf("init services: %w", err)
	}
	if err := hub.StartAll(); err != nil {
		return fmt.Errorf("start services: %w", err)
	}
	defer hub.StopAll()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	// Panic Recovery: Ensure terminal is reset even if the frame loop crashes
	defer func() {
		if r := recover(); r != nil {
			crash(screen, "SLING", r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return pollInput(gctx, screen, g.Input())
	})
	grp.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				crash(screen, "FRAME LOOP", r)
			}
		}()
		// Wake the blocked poller once frames stop
		defer func() {
			cancel()
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()
		return runFrames(gctx, g, render.NewHUD(screen), cfg.Engine.FrameInterval())
	})

	err = grp.Wait()
	g.shutdown()
	log.Info().Str("run", runID.String()).Msg("Stopping sling")
	return err
}

// assemble builds the service hub and the game, binding notification consumers to the router
func (p *PlayCmd) assemble(cfg *config.Config, reg *status.Registry) (*service.Hub, *game, error) {
	hub := service.NewHub()

	audioSvc := audio.NewService(cfg.Thresholds.ChargeDuration)
	if err := hub.Register(audioSvc, p.Mute); err != nil {
		return nil, nil, err
	}
	handlers := []event.Handler{audioSvc}

	if p.Journal != "" {
		writer := journal.NewWriter(p.Journal)
		if err := hub.Register(writer); err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, writer)
	}

	g := newGame(cfg, engine.NewMonotonicTimeProvider(), reg, handlers...)

	if p.Config != "" {
		watcher := config.NewWatcher(p.Config, func(next *config.Config) {
			g.SetThresholds(next.Thresholds)
		})
		if err := hub.Register(watcher); err != nil {
			return nil, nil, err
		}
	}
	return hub, g, nil
}

// runFrames steps and draws at interval until a quit is drained or ctx ends
func runFrames(ctx context.Context, g *game, hud *render.HUD, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			g.step()
			if g.Quit() {
				return nil
			}
			hud.Draw(g.frame())
		}
	}
}
