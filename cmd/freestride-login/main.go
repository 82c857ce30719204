package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/claude/freestride/internal/session"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	stateDir := flag.String("state-dir", "./state", "directory holding the session database")
	tokensPath := flag.String("tokens", "", "token dump file produced by your Garmin authenticator, or - for stdin")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("freestride-login", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *tokensPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: freestride-login -tokens <dump file|-> [-state-dir DIR]\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var data []byte
	var err error
	if *tokensPath == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(*tokensPath)
	}
	if err != nil {
		log.Error("failed to read token dump", "error", err)
		os.Exit(1)
	}

	token, err := session.ParseDump(data)
	if err != nil {
		log.Error("failed to parse token dump", "error", err)
		os.Exit(1)
	}

	store, err := session.Open(*stateDir)
	if err != nil {
		log.Error("failed to open session store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Save(token); err != nil {
		log.Error("failed to save session", "error", err)
		os.Exit(1)
	}

	expires := time.Unix(token.ExpiresAt, 0)
	if token.Expired() {
		log.Warn("session imported but already expired", "expired_at", expires.Format(time.RFC3339))
	} else {
		log.Info("session imported", "state_dir", *stateDir, "expires_at", expires.Format(time.RFC3339))
	}
}
