package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"tailscale.com/tsnet"

	"github.com/claude/freestride/internal/config"
	"github.com/claude/freestride/internal/garmin"
	fsmcp "github.com/claude/freestride/internal/mcp"
	"github.com/claude/freestride/internal/server"
	"github.com/claude/freestride/internal/session"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	stdio := flag.Bool("stdio", false, "serve MCP over stdio instead of HTTP")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("freestride", Version)
		return
	}

	// Logs go to stderr: in stdio mode stdout carries the MCP protocol.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("FreeStride starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Open the Garmin session store
	store, err := session.Open(cfg.Garmin.StateDir)
	if err != nil {
		log.Error("failed to open session store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	mgr := session.NewManager(store)

	// gc stays a nil interface without a usable session so that tools
	// report the login hint instead of dead API calls.
	var gc fsmcp.Connect
	if mgr.Valid() {
		gc = garmin.NewClient(cfg.Garmin.BaseURL, mgr)
		log.Info("Garmin session loaded", "state_dir", cfg.Garmin.StateDir)
	} else {
		log.Warn("no usable Garmin session; run freestride-login to import one")
	}

	mcpSrv := fsmcp.New(gc, Version, log)

	if *stdio {
		log.Info("serving MCP over stdio")
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			log.Error("stdio server error", "error", err)
			os.Exit(1)
		}
		return
	}

	if cfg.Auth.BearerToken == "" {
		log.Warn("auth.bearer_token is empty: /mcp is unauthenticated")
	}

	mcpHandler := mcpserver.NewStreamableHTTPServer(mcpSrv)
	srv := server.New(mcpHandler, mgr.Valid, cfg.Auth.BearerToken, log)

	// Start server — tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
