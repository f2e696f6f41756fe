// Package main runs the portfolio build tooling.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	sitebuildcmd "github.com/rkprasad/portfolio/internal/cmd/sitebuild"
	"github.com/rkprasad/portfolio/internal/platform/config"
)

func main() {
	log.SetPrefix("[SITEBUILD] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := sitebuildcmd.Execute(ctx, os.Args[1:])
	stop()
	config.ExitOnError(err, "sitebuild")
}
