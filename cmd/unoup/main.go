package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/unoup/pkg/commands/broker"
	"github.com/lvim-tech/unoup/pkg/commands/client"
	"github.com/lvim-tech/unoup/pkg/commands/localtest"
	"github.com/lvim-tech/unoup/pkg/commands/worker"
	"github.com/lvim-tech/unoup/pkg/config"
	"github.com/lvim-tech/unoup/pkg/menu"
	"github.com/lvim-tech/unoup/pkg/spawn"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "unoup",
		Short: "Interactive launcher for a local UNO broker/worker/client topology",
		Long: `unoup presents a menu of launch actions and starts the external
broker, worker, and client programs in new terminal sessions. It does
not manage the spawned processes in any way after launch.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, spawner, err := setup()
			if err != nil {
				return err
			}
			return menu.Run(menu.NewContext(os.Stdin, os.Stdout, spawner, cfg))
		},
	}

	rootCmd.AddCommand(
		newBrokerCmd(),
		newWorkerCmd(),
		newClientCmd(),
		newTestCmd(),
		newInitCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newBrokerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "broker",
		Short: "Start the broker without the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, spawner, err := setup()
			if err != nil {
				return err
			}
			ctx := menu.NewDirectContext(spawner, cfg, args)
			return broker.Run(ctx).Error
		},
	}
}

func newWorkerCmd() *cobra.Command {
	var brokerHost string
	var port string

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Start a worker without the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, spawner, err := setup()
			if err != nil {
				return err
			}
			ctx := menu.NewDirectContext(spawner, cfg, []string{brokerHost, port})
			return worker.Run(ctx).Error
		},
	}

	cmd.Flags().StringVar(&brokerHost, "broker-host", "", "broker address (default from config)")
	cmd.Flags().StringVar(&port, "port", "", "worker listen port (default from config)")

	return cmd
}

func newClientCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "client",
		Short: "Start a client without the menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, spawner, err := setup()
			if err != nil {
				return err
			}
			ctx := menu.NewDirectContext(spawner, cfg, args)
			return client.Run(ctx).Error
		},
	}
}

func newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Start the full local test topology (broker + 2 workers + 2 clients)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, spawner, err := setup()
			if err != nil {
				return err
			}
			ctx := menu.NewDirectContext(spawner, cfg, args)
			return localtest.Run(ctx).Error
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize user config",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.InitUserConfig(); err != nil {
				return err
			}

			fmt.Printf("Config initialized at: %s\n", config.GetUserConfigPath())
			fmt.Println("\nEdit it to point unoup at your broker/worker/client binaries.")
			fmt.Println("Run 'unoup' to start the menu.")

			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("unoup version " + version)
		},
	}
}

func setup() (*config.Config, spawn.Spawner, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, spawn.New(cfg), nil
}
