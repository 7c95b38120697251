package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mission-route-service/internal/adapters/generator"
	"mission-route-service/internal/adapters/repositories"
	"mission-route-service/internal/app"
	"mission-route-service/internal/config"
	"mission-route-service/internal/domain"
	"mission-route-service/internal/platform/obs"
	"mission-route-service/internal/ports"
	"mission-route-service/internal/presentation"
	"mission-route-service/internal/services"
)

type planOptions struct {
	stopsPath  string
	mode       string
	external   bool
	replyPath  string
	sequencing string
	asJSON     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "routectl",
		Short:        "Plan technician routes from the command line",
		SilenceUsage: true,
	}
	root.AddCommand(newPlanCmd())
	return root
}

func newPlanCmd() *cobra.Command {
	var opts planOptions

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute a depot round trip over the missions in a seed file",
		Long: `Reads missions in the seed file format and prints the route.
Without --external or --reply the route is built locally.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.stopsPath, "stops", "", "JSON file of missions (required)")
	f.StringVar(&opts.mode, "mode", string(domain.ModeDriving), "transport mode: driving, walking, bicycling, transit")
	f.BoolVar(&opts.external, "external", false, "ask the configured external optimizer")
	f.StringVar(&opts.replyPath, "reply", "", "replay a recorded optimizer reply instead of calling out")
	f.StringVar(&opts.sequencing, "sequencing", "", "local ordering: input or nearest_neighbor (defaults to ROUTE_SEQUENCING)")
	f.BoolVar(&opts.asJSON, "json", false, "print the route as JSON")
	f.BoolVar(&opts.verbose, "verbose", false, "log optimizer decisions to stderr")
	_ = cmd.MarkFlagRequired("stops")

	return cmd
}

func runPlan(cmd *cobra.Command, opts planOptions) error {
	if opts.external && opts.replyPath != "" {
		return errors.New("--external and --reply are mutually exclusive")
	}

	mode, err := domain.ParseTransportMode(opts.mode)
	if err != nil {
		return err
	}

	missions, err := repositories.LoadSeedFile(opts.stopsPath)
	if err != nil {
		return err
	}

	if opts.external {
		_ = godotenv.Load()
	}
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if opts.sequencing != "" {
		cfg.RouteSequencer = opts.sequencing
	}

	logger := zap.NewNop()
	if opts.verbose {
		if logger, err = obs.NewLogger("debug", true); err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
	}

	gen, err := selectGenerator(cmd, cfg, opts, logger)
	if err != nil {
		return err
	}

	seq, err := services.ParseSequencing(cfg.RouteSequencer)
	if err != nil {
		return err
	}
	optimizer := services.NewRouteOptimizer(gen, services.OptimizerConfig{
		Enabled:    gen != nil,
		Sequencing: seq,
	}, logger)

	stops := make([]domain.MissionStop, 0, len(missions))
	for _, m := range missions {
		stops = append(stops, m.Stop())
	}

	route := optimizer.Optimize(cmd.Context(), stops, domain.DefaultDepot, mode)
	view := presentation.Present(route, missions, domain.DefaultDepot)

	return printView(cmd.OutOrStdout(), view, opts.asJSON)
}

func selectGenerator(cmd *cobra.Command, cfg config.Config, opts planOptions, log *zap.Logger) (ports.TextGenerator, error) {
	switch {
	case opts.replyPath != "":
		g, err := generator.NewStaticGeneratorFromFile(opts.replyPath)
		if err != nil {
			return nil, err
		}
		return g, nil
	case opts.external:
		if !cfg.OptimizerEnabled() {
			return nil, errors.New("--external needs OPTIMIZER_PROVIDER set to http or genai")
		}
		return app.NewGenerator(cmd.Context(), cfg, log)
	default:
		return nil, nil
	}
}

func printView(w io.Writer, view presentation.RouteView, asJSON bool) error {
	if !asJSON {
		return presentation.WriteText(w, view)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("encode route: %w", err)
	}
	return nil
}
