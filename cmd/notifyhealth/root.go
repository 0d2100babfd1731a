package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/auto-dns/notifyhealth/internal/app"
	"github.com/auto-dns/notifyhealth/internal/config"
	"github.com/auto-dns/notifyhealth/internal/logger"
)

type contextKey string

const configKey = contextKey("config")

const channelAnnotation = "channel"

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"log-level":        "log.log_level",
	"label":            "app.label",
	"hostname":         "app.hostname",
	"report-no-health": "app.report_no_health",
	"docker-host":      "docker.host",
	"callback-url":     "notify.callback_url",
	"endpoints":        "etcd.endpoints",
	"prefix":           "etcd.prefix",
	"ttl":              "etcd.ttl",
}

var newApplication = func(cfg *config.Config, logger zerolog.Logger) (application, error) {
	return app.New(cfg, logger)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "notifyhealth",
		Short: "Report unhealthy and stopped Docker containers",
		Long: "Checks the local Docker engine once for running containers that are not healthy and for " +
			"labelled containers that are not running, then reports them through the chosen channel.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := config.New()
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			if channel, ok := cmd.Annotations[channelAnnotation]; ok {
				v.Set("notify.channel", channel)
			}

			configPath, _ := cmd.Flags().GetString("config")
			if err := config.ReadFile(v, configPath); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), configKey, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is config.yaml)")
	flags.String("log-level", "error", "set log level (e.g. ERROR, WARN, INFO, DEBUG)")
	flags.StringP("label", "l", "", "label that marks containers expected to be running")
	flags.String("hostname", "", "server name added to notifications")
	flags.BoolP("report-no-health", "r", false, "also report running containers without a health check")
	flags.String("docker-host", "", "docker daemon address (default is DOCKER_HOST)")

	rootCmd.AddCommand(
		newChannelCmd(config.ChannelPrint, "Print the report to the console"),
		withCallbackURL(newChannelCmd(config.ChannelTeams, "Send the report to a Teams webhook as a message card")),
		withCallbackURL(newChannelCmd(config.ChannelWebhook, "Send the report to a webhook as JSON")),
		withCallbackURL(newChannelCmd(config.ChannelSlack, "Send the report to a Slack incoming webhook")),
		withEtcd(newChannelCmd(config.ChannelEtcd, "Publish the report to etcd under this host's key")),
	)
	return rootCmd
}

func newChannelCmd(channel config.Channel, short string) *cobra.Command {
	return &cobra.Command{
		Use:         string(channel),
		Short:       short,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{channelAnnotation: string(channel)},
		RunE:        runProbe,
	}
}

func withCallbackURL(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().StringP("callback-url", "c", "", "webhook url")
	return cmd
}

func withEtcd(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().StringSlice("endpoints", []string{"localhost:2379"}, "etcd endpoints")
	cmd.Flags().String("prefix", "/notifyhealth", "etcd key prefix")
	cmd.Flags().Int64("ttl", 3600, "seconds before a published report expires")
	return cmd
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func runProbe(cmd *cobra.Command, args []string) error {
	// Load configuration.
	cfg := cmd.Context().Value(configKey).(*config.Config)

	// Set up logger.
	logInstance := logger.SetupLogger(&cfg.Logging)

	// Create the application.
	application, err := newApplication(cfg, logInstance)
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			logInstance.Error().Err(err).Msg("Failed to close application")
		}
	}()

	// Cancel the probe on SIGINT or SIGTERM.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logInstance.Info().Msgf("Received signal: %v", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := application.Run(ctx); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Execution error: %v\n", err)
		os.Exit(1)
	}
}
