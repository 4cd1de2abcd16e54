package app

import (
	"context"
	"io"

	"cli-tabdb-helper/internal/config"
)

// Mode selects which command the runner executes.
type Mode int

const (
	ModeFilter Mode = iota
	ModeStats
	ModePlays
	ModeRequests
)

// Options captures user-supplied CLI parameters after config resolution.
type Options struct {
	Mode      Mode
	QueryFile string // filter: read values from YAML instead of prompting
	Dimension string // stats
	Song      string // plays: empty lists every session
	Artist    string // requests
	In        io.Reader
	Out       io.Writer
}

// Run is the entry point for every tabdb command.
func Run(ctx context.Context, cfg config.Config, opts Options) error {
	return newRunner(cfg, opts).Execute(ctx)
}
