// Command oidcore inspects a provider configuration: it validates the
// metadata the way the server would at startup and prints the resulting
// discovery document.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dropDatabas3/oidcore/internal/config"
	"github.com/dropDatabas3/oidcore/internal/metrics"
	"github.com/dropDatabas3/oidcore/internal/observability/logger"
	"github.com/dropDatabas3/oidcore/internal/oidc"
	"github.com/dropDatabas3/oidcore/internal/store"
)

var cfgPath string

func loadProvider() (*oidc.Provider, *config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, ServiceName: "oidcore"})

	if err := metrics.RegisterAuthz(nil); err != nil {
		return nil, nil, fmt.Errorf("register metrics: %w", err)
	}

	p, err := oidc.NewProvider(cfg.ProviderConfig())
	if err != nil {
		return nil, nil, err
	}
	return p, cfg, nil
}

func main() {
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "oidcore",
		Short:         "OIDC provider configuration tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "path to config.yaml")

	check := &cobra.Command{
		Use:   "check",
		Short: "Validate the provider configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := loadProvider()
			if err != nil {
				return err
			}
			fmt.Printf("ok: issuer %s\n", p.Issuer())
			return nil
		},
	}

	discovery := &cobra.Command{
		Use:   "discovery",
		Short: "Print the discovery document as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := loadProvider()
			if err != nil {
				return err
			}
			doc := p.DiscoveryDocument()
			out, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	purge := &cobra.Command{
		Use:   "purge",
		Short: "Delete expired authorization codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := loadProvider()
			if err != nil {
				return err
			}
			stores, err := store.New(cfg)
			if err != nil {
				return err
			}
			if stores.Janitor == nil {
				fmt.Printf("store %q expires codes by TTL, nothing to purge\n", cfg.Store.Kind)
				return nil
			}
			if err := stores.Janitor.DeleteExpired(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("expired authorization codes deleted")
			return nil
		},
	}

	root.AddCommand(check, discovery, purge)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
