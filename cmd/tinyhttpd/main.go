package main

import (
	"flag"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbjohnson/clock"

	"tinyhttp/filestore"
	"tinyhttp/router"
	"tinyhttp/server"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:4221", "address to listen on")
	dir := flag.String("dir", "files", "directory served by the /files routes")
	workers := flag.Int("workers", server.DefaultPoolSize, "size of the connection worker pool")
	readBuffer := flag.Int("read-buffer", server.DefaultReadBufferSize, "per-connection read buffer size in bytes")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	l, err := net.Listen("tcp", *addr)
	if err != nil {
		logger.Error("failed to bind listener", "addr", *addr, "error", err)
		os.Exit(1)
	}

	rt := router.New(filestore.New(*dir), logger)

	srv := server.New(l, logger, clock.New(), rt.Route, server.Options{
		PoolSize:       *workers,
		ReadBufferSize: *readBuffer,
	})
	srv.Start()

	logger.Info("listening", "addr", l.Addr().String())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	if err := srv.Close(); err != nil {
		logger.Error("error during shutdown", "error", err)
	}
}
