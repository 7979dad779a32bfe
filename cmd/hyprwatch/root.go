package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"hyprwatch/internal/config"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "hyprwatch",
		Short: "Stream enriched compositor state snapshots as JSON",
		Long: `hyprwatch connects to the running Hyprland instance and emits one JSON
snapshot of the watched entity kind (monitors, workspaces, or clients)
at startup and after every relevant compositor event. Snapshots are
enriched with attributes the raw protocol does not carry, such as
shown/active workspace flags and resolved monitor names on clients.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.PersistentFlags().BoolVarP(&ctx.pretty, "pretty", "p", false, "Pretty print snapshots (multiple lines per document)")
	rootCmd.PersistentFlags().BoolVarP(&ctx.once, "once", "o", false, "Query once and exit instead of watching for events")
	rootCmd.PersistentFlags().StringVar(&ctx.format, "format", "", "Output format: json or table (table requires --once)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newMonitorsCommand(ctx))
	rootCmd.AddCommand(newWorkspacesCommand(ctx))
	rootCmd.AddCommand(newClientsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// commandContext carries flag storage and lazily loaded configuration
// shared by all subcommands.
type commandContext struct {
	configFlag *string

	pretty bool
	once   bool
	format string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = &usageError{err: err}
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// outputFormat resolves the effective format: flag beats config.
func (c *commandContext) outputFormat(cmd *cobra.Command, cfg *config.Config) (string, error) {
	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format = strings.ToLower(strings.TrimSpace(c.format))
	}
	switch format {
	case "json", "table":
	default:
		return "", &usageError{err: fmt.Errorf("unsupported output format %q", format)}
	}
	if format == "table" && !c.once {
		return "", &usageError{err: fmt.Errorf("table output requires --once")}
	}
	return format, nil
}

func (c *commandContext) outputPretty(cmd *cobra.Command, cfg *config.Config) bool {
	if cmd.Flags().Changed("pretty") {
		return c.pretty
	}
	return cfg.Output.Pretty || c.pretty
}
