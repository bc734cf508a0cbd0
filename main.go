package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"spritebg/batch"
	"spritebg/parallel"
)

type cli struct {
	Workers int          `help:"Number of images processed at once, 0 for one per CPU" default:"0"`
	Debug   bool         `help:"Log per-file details" default:"false"`
	Erase   batch.CLICmd `cmd:"" default:"withargs" help:"Make the corner-sampled background of sprites transparent, in place"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("spritebg"),
		kong.Description("Remove uniform backgrounds from pixel art."),
		kong.UsageOnError(),
	)

	if c.Debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	pool := parallel.Start(c.Workers)
	slog.Debug("running", "command", kctx.Command(), "workers", pool.Workers())

	err := kctx.Run(pool.Do, pool.Wait)
	kctx.FatalIfErrorf(err)
}
