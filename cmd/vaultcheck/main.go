// Command vaultcheck compares the server-side vault revision with the one
// cached from the previous run and reports whether a full sync is needed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/olekhv/vaultkeep/internal/adapter"
	"github.com/olekhv/vaultkeep/internal/client"
	"github.com/olekhv/vaultkeep/internal/logger"
)

type checkConfig struct {
	// Address is the base URL of the vaultkeep server.
	// Env: VAULTCHECK_ADDRESS
	Address string `env:"VAULTCHECK_ADDRESS"`

	// Token is the bearer access token used for the revision request.
	// Env: VAULTCHECK_TOKEN
	Token string `env:"VAULTCHECK_TOKEN"`

	// CachePath is where the last observed revision is stored between runs.
	// Env: VAULTCHECK_CACHE
	CachePath string `env:"VAULTCHECK_CACHE"`

	// Timeout bounds the revision request.
	// Env: VAULTCHECK_TIMEOUT
	Timeout time.Duration `env:"VAULTCHECK_TIMEOUT"`
}

func main() {
	_ = godotenv.Load()

	log := logger.NewLogger("vaultcheck")

	cfg, err := getCheckConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("revision check failed")
	}
}

func run(ctx context.Context, cfg *checkConfig, log *logger.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Address, cfg.Token, cfg.Timeout, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	cache, err := client.NewRevisionCache(ctx, cfg.CachePath, log)
	if err != nil {
		return fmt.Errorf("open revision cache: %w", err)
	}
	defer cache.Close()

	serverRevision, err := serverAdapter.RevisionDate(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return fmt.Errorf("access token rejected, log in again: %w", err)
		}
		return fmt.Errorf("query server revision: %w", err)
	}

	cachedRevision, found, err := cache.Get(ctx)
	if err != nil {
		return fmt.Errorf("read cached revision: %w", err)
	}

	switch {
	case !found:
		fmt.Printf("no cached revision, full sync needed (server revision %d)\n", serverRevision)
	case cachedRevision != serverRevision:
		fmt.Printf("vault changed, full sync needed (cached %d, server %d)\n", cachedRevision, serverRevision)
	default:
		fmt.Printf("vault is up to date (revision %d)\n", serverRevision)
	}

	if err = cache.Set(ctx, serverRevision); err != nil {
		return fmt.Errorf("store revision: %w", err)
	}

	return nil
}

func getCheckConfig() (*checkConfig, error) {
	cfg := &checkConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing env variables: %w", err)
	}

	address := flag.String("a", "", "server address, e.g. http://localhost:8080")
	token := flag.String("t", "", "bearer access token")
	cachePath := flag.String("f", "", "path to the revision cache file")
	timeout := flag.Duration("timeout", 0, "request timeout")
	flag.Parse()

	if *address != "" {
		cfg.Address = *address
	}
	if *token != "" {
		cfg.Token = *token
	}
	if *cachePath != "" {
		cfg.CachePath = *cachePath
	}
	if *timeout != 0 {
		cfg.Timeout = *timeout
	}

	if cfg.Address == "" {
		return nil, errors.New("server address is required (-a or VAULTCHECK_ADDRESS)")
	}
	if cfg.Token == "" {
		return nil, errors.New("access token is required (-t or VAULTCHECK_TOKEN)")
	}
	if cfg.CachePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot resolve default cache path: %w", err)
		}
		cfg.CachePath = home + "/.vaultcheck.db"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	return cfg, nil
}
