// Command modassigner runs the mod assignment engine against a loadout
// request file and prints the resulting assignment.
package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/loadoutkit/mod-assigner/api/v1alpha1"
	"github.com/loadoutkit/mod-assigner/internal/config"
	"github.com/loadoutkit/mod-assigner/internal/defs"
	"github.com/loadoutkit/mod-assigner/internal/engines/assigner"
	"github.com/loadoutkit/mod-assigner/internal/logging"
	"github.com/loadoutkit/mod-assigner/internal/metrics"
)

// Build-time variables injected via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "modassigner",
		Short:         "Assign loadout mods to equipment slots",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAssignCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "modassigner %s (commit %s, built %s)\n", version, commit, buildDate)
		},
	}
}

func newAssignCmd() *cobra.Command {
	var (
		configPath  string
		requestPath string
	)

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Compute the optimal mod assignment for a loadout request",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAssign(cmd, configPath, requestPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the configuration file")
	cmd.Flags().StringVar(&requestPath, "request", "", "path to the loadout request file (YAML)")
	cmd.Flags().String("manifest-path", "", "path to the definitions manifest (JSON)")
	cmd.Flags().Int("tier", config.DefaultTier, "capacity upgrade tier")
	cmd.Flags().Bool("lock-energy-type", false, "pin slot energy types to their declared values")
	_ = cmd.MarkFlagRequired("request")
	return cmd
}

func runAssign(cmd *cobra.Command, configPath, requestPath string) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	ctx := logging.NewContext(cmd.Context(), logger)

	var provider defs.Provider
	if cfg.ManifestPath != "" {
		manifest, err := defs.LoadManifest(cfg.ManifestPath)
		if err != nil {
			return err
		}
		provider = manifest
	}

	data, err := os.ReadFile(requestPath)
	if err != nil {
		return fmt.Errorf("failed to read request %s: %w", requestPath, err)
	}
	var req v1alpha1.LoadoutRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse request %s: %w", requestPath, err)
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	tier := cfg.Tier
	if req.Tier != nil {
		tier = *req.Tier
	}
	lockType := cfg.LockEnergyType
	if req.LockEnergyType != nil {
		lockType = *req.LockEnergyType
	}

	engine, err := assigner.NewEngine(assigner.ExhaustiveStrategy, &assigner.EngineConfig{
		Metrics: metrics.NewSearchMetrics(prometheus.NewRegistry()),
	})
	if err != nil {
		return err
	}

	slots, mods := req.ToCore(provider)
	result, err := engine.Assign(ctx, assigner.Request{
		Slots:          slots,
		Mods:           mods,
		Definitions:    provider,
		Tier:           tier,
		LockEnergyType: lockType,
	})
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(v1alpha1.NewAssignmentResult(result, slots))
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
