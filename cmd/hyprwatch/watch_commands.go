package main

import (
	"github.com/spf13/cobra"

	"hyprwatch/internal/filter"
	"hyprwatch/internal/logging"
	"hyprwatch/internal/state"
	"hyprwatch/internal/watch"
)

func newMonitorsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "monitors",
		Short: "Watch changes in monitors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, ctx, state.KindMonitors, filter.Options{})
		},
	}
}

func newWorkspacesCommand(ctx *commandContext) *cobra.Command {
	var monitor string
	var special bool

	cmd := &cobra.Command{
		Use:   "workspaces",
		Short: "Watch changes in workspaces",
		Long: `Watch changes in workspaces. Output includes workspaces that are
configured but not instantiated (exists=false) plus the derived shown
and active flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := filter.Options{Monitor: monitor}
			if cmd.Flags().Changed("special") {
				opts.Special = &special
			}
			return runWatch(cmd, ctx, state.KindWorkspaces, opts)
		},
	}
	cmd.Flags().StringVarP(&monitor, "monitor", "m", "", "Only watch workspaces on this monitor")
	cmd.Flags().BoolVarP(&special, "special", "s", false, "Only watch workspaces with (or without) special status")
	return cmd
}

func newClientsCommand(ctx *commandContext) *cobra.Command {
	var monitor string
	var workspace string

	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Watch changes in clients (windows)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := filter.Options{Monitor: monitor, Workspace: workspace}
			return runWatch(cmd, ctx, state.KindClients, opts)
		},
	}
	cmd.Flags().StringVarP(&monitor, "monitor", "m", "", "Only watch clients on this monitor")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Only watch clients on this workspace (id or name:NAME)")
	return cmd
}

func runWatch(cmd *cobra.Command, ctx *commandContext, kind state.Kind, filterOpts filter.Options) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	// Reject bad flag combinations before any socket is touched.
	if err := filterOpts.Validate(kind); err != nil {
		return err
	}
	format, err := ctx.outputFormat(cmd, cfg)
	if err != nil {
		return err
	}

	log, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	var emitter watch.Emitter
	switch format {
	case "table":
		emitter = newTableEmitter(cmd.OutOrStdout())
	default:
		emitter = newJSONEmitter(cmd.OutOrStdout(), ctx.outputPretty(cmd, cfg))
	}

	watcher, err := watch.New(watch.Options{
		Kind:       kind,
		Once:       ctx.once,
		Filter:     filterOpts,
		RuntimeDir: cfg.Paths.RuntimeDir,
	}, emitter, log)
	if err != nil {
		return err
	}
	return watcher.Run(cmd.Context())
}
