package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"pong/internal/desktop"
	"pong/internal/game"
	"pong/internal/terminal"
)

var (
	termFlag   = flag.Bool("term", false, "Play in the terminal instead of a window")
	assetsFlag = flag.String("assets", "", "Directory with left.bmp, right.bmp and pause.bmp (default: built-in art)")
	seedFlag   = flag.Uint64("seed", 0, "Random seed (0: $PONG_SEED or the clock)")
	scaleFlag  = flag.Int("scale", game.WindowScale, "Window pixels per grid cell")
	logFlag    = flag.String("log", "", "Append the log to this file")
)

// GLFW and GL calls must come from the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	logFile, err := setupLogging(*logFlag, *termFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "8pong: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		log.Print(err)
		if *termFlag {
			fmt.Fprintf(os.Stderr, "8pong: %v\n", err)
		}
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run() error {
	assets := game.BuiltinAssets()
	if *assetsFlag != "" {
		var err error
		assets, err = game.LoadAssets(os.DirFS(*assetsFlag))
		if err != nil {
			return err
		}
		log.Printf("Loaded images from %s", *assetsFlag)
	}

	platform, closePlatform, err := openPlatform(assets)
	if err != nil {
		return err
	}
	defer closePlatform()

	seed := resolveSeed(*seedFlag, os.Getenv("PONG_SEED"), time.Now())
	log.Printf("Seed %d", seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.New(seed)
	if err := game.Run(ctx, platform, g, nil); err != nil {
		return err
	}
	log.Printf("Stopped after %d ticks", g.Session.Tick)
	return nil
}

func openPlatform(assets game.Assets) (game.Platform, func(), error) {
	if *termFlag {
		p, err := terminal.Open(terminal.Options{Assets: assets})
		if err != nil {
			return nil, nil, fmt.Errorf("terminal: %w", err)
		}
		return p, p.Close, nil
	}

	p, err := desktop.Open(desktop.Options{Scale: *scaleFlag, Assets: assets})
	if err != nil {
		return nil, nil, fmt.Errorf("desktop: %w", err)
	}
	return p, p.Close, nil
}

// resolveSeed prefers the flag, then the environment, then the clock.
// A malformed environment value is ignored.
func resolveSeed(flagSeed uint64, env string, now time.Time) uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if env != "" {
		if v, err := strconv.ParseUint(env, 10, 64); err == nil {
			return v
		}
	}
	return uint64(now.UnixNano())
}

// setupLogging sends the log to path when given. Without a file the log goes
// to stderr, except in the terminal where it would corrupt the screen.
func setupLogging(path string, inTerminal bool) (*os.File, error) {
	log.SetPrefix("8pong: ")
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	if path == "" {
		if inTerminal {
			log.SetOutput(io.Discard)
		} else {
			log.SetOutput(os.Stderr)
		}
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}
