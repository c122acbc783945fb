package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"pkt.systems/psi"
	"pkt.systems/pslog"

	"github.com/pluqqy/schemadeck/cmd/commands"
	"github.com/pluqqy/schemadeck/internal/config"
	"github.com/pluqqy/schemadeck/pkg/files"
)

// Version is set during build with -ldflags
var version = "dev"

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	cfg, cfgErr := config.Load(filepath.Join(".", files.ProjectDir))
	if cfgErr != nil {
		cfg = config.Default()
	}

	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(cfg.LogOptions()),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	if cfgErr != nil {
		logger.With("err", cfgErr).Error("config ignored, using defaults")
	}

	root := commands.NewRootCommand(version)
	root.SetArgs(os.Args[1:])

	if err := root.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("schemadeck command failed")
		return 1
	}
	return 0
}
