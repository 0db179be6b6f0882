package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/jumppoint/server"
)

func runServe(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg := server.DefaultConfig()
	var (
		lf     logFlags
		mapDir = fs.String("maps", "", "directory of map files")
	)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.Float64Var(&cfg.RequestsPerSecond, "rps", 0, "request rate limit per second (0 disables)")
	fs.IntVar(&cfg.Burst, "burst", 10, "rate limiter burst")
	fs.Int64Var(&cfg.MemoryLimit, "mem", 0, "bytes all searches may reserve together (0 is unlimited)")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "grace period for in-flight requests")
	lf.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *mapDir == "" {
		return fmt.Errorf("%w: -maps is required", errUsage)
	}

	logger, err := lf.logger(stderr)
	if err != nil {
		return err
	}
	cfg.Logger = logger
	gin.SetMode(gin.ReleaseMode)

	s := server.New(cfg)
	n, err := s.LoadDir(*mapDir)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no map files in %s", *mapDir)
	}

	return s.Run(ctx)
}
