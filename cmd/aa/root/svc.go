package root

import (
	"github.com/spf13/cobra"

	"github.com/Shubham12sharma/Assign-Alert/internal/config"
	"github.com/Shubham12sharma/Assign-Alert/internal/engine"
	"github.com/Shubham12sharma/Assign-Alert/internal/store"
)

// openService builds the seeded store and a service configured from the
// config file. State is in-memory and resets between invocations; the seed
// dataset stands in for the not-yet-built transport.
func openService(cmd *cobra.Command) (*engine.Service, config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, config.Config{}, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, config.Config{}, err
	}

	svc := engine.NewService(store.Seed(), engine.Options{
		User:    cfg.User,
		Latency: cfg.Latency(),
	})
	return svc, cfg, nil
}

func scopeFlag(cmd *cobra.Command) string {
	scope, _ := cmd.Flags().GetString("scope")
	if scope == "" {
		return store.ScopeAll
	}
	return scope
}
