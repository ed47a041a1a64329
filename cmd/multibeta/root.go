package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/thanhbinhnd2002/multi-agent-streamlit/diffusion"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/internal/config"
	"github.com/thanhbinhnd2002/multi-agent-streamlit/internal/ctxlog"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v   *viper.Viper
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "multibeta",
		Short: "Competitive opinion-diffusion support ranking",
		Long: "multibeta lets every node of a network compete, one at a time, against " +
			"external opposing anchors and writes each node's total support to CSV.",
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .multibeta.yaml)")
	pf.BoolP("verbose", "v", false, "debug logging")
	addParamFlags(pf)
	if err := bindFlags(a.v, pf); err != nil {
		panic(err)
	}

	root.AddCommand(
		newRunCmd(a),
		newWatchCmd(a),
		newInspectCmd(a),
		newGenerateCmd(),
		newResultsCmd(a),
		newConfigCmd(a),
	)

	return root
}

// addParamFlags registers the diffusion and run settings shared by all
// subcommands. Flag defaults mirror config.SetDefaults for help output only.
func addParamFlags(pf *pflag.FlagSet) {
	p := diffusion.DefaultParams()
	pf.Float64("epsilon", p.Epsilon, "coupling strength between network nodes")
	pf.Float64("delta", p.Delta, "coupling strength towards the opposing anchors")
	pf.Int("max-iter", p.MaxIter, "iteration cap per diffusion round")
	pf.Float64("tol", p.Tol, "L2 convergence threshold")
	pf.Int("anchors", p.Anchors, "number of opposing anchors per round")
	pf.Float64("clip-min", p.ClipMin, "lower state bound")
	pf.Float64("clip-max", p.ClipMax, "upper state bound")
	pf.Float64("inf", p.Inf, "iteration budget used in the output folder name")

	pf.String("input", "data_1", "folder of edge-list .txt files")
	pf.String("output", "Output_test", "root of the result folders")
	pf.Int("workers", 0, "parallel alpha evaluations (0 = CPU count)")
	pf.String("sqlite", "", "also store results in this SQLite database")
	pf.String("log-level", "info", "debug, info, warn or error")
	pf.String("log-format", "text", "text or json")
	pf.Duration("debounce", 500*time.Millisecond, "quiet period before a changed file is processed")
}

// flagKeys maps flag names onto config keys.
var flagKeys = map[string]string{
	"epsilon":    "epsilon",
	"delta":      "delta",
	"max-iter":   "max_iter",
	"tol":        "tol",
	"anchors":    "anchors",
	"clip-min":   "clip_min",
	"clip-max":   "clip_max",
	"inf":        "inf",
	"input":      "input",
	"output":     "output",
	"workers":    "workers",
	"sqlite":     "sqlite",
	"log-level":  "log_level",
	"log-format": "log_format",
	"debounce":   "debounce",
}

func bindFlags(v *viper.Viper, pf *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, pf.Lookup(name)); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}

	return nil
}

// initConfig resolves the configuration and installs the logger on the
// command context.
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	file, _ := cmd.Flags().GetString("config")
	if err := config.Discover(a.v, file); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg

	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	logger.Debug("configuration loaded", "file", a.v.ConfigFileUsed(), "params", cfg.Params)

	return nil
}
