package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	moneytree "github.com/dogecoinfoundation/moneytree/pkg"
	"github.com/dogecoinfoundation/moneytree/pkg/hd"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// App is the state shared by every subcommand once flags and config are loaded.
type App struct {
	Config   moneytree.Config
	Registry *hd.Registry
	Chain    *hd.NetworkParams
	Log      *log.Logger
	Out      io.Writer
}

func NewRootCommand() *cobra.Command {
	app := &App{}
	v := viper.New()

	// define root command
	rootCmd := &cobra.Command{
		Use:           "moneytree",
		Short:         "Derive, encode and inspect BIP32 HD keys",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Setup(v, cmd.OutOrStdout())
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	// Add flags for each configuration option
	rootCmd.PersistentFlags().String("config", "", "Config file (toml, yaml or json)")
	rootCmd.PersistentFlags().String("network", "", "Network profile (default from config: bitcoin)")
	rootCmd.PersistentFlags().String("log-file", "", "Log file")
	// Bind flags to config fields
	v.BindPFlags(rootCmd.PersistentFlags())
	v.SetEnvPrefix("MONEYTREE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(
		generateCommand(app),
		deriveCommand(app),
		inspectCommand(app),
		keyCommand(app),
		extractCommand(app),
		qrCommand(app),
		networksCommand(app),
		showconfCommand(app),
	)
	return rootCmd
}

// Setup loads the config file, applies flag overrides and resolves the network.
func (a *App) Setup(v *viper.Viper, out io.Writer) error {
	conf, err := moneytree.LoadConfig(v.GetString("config"))
	if err != nil {
		return err
	}
	if network := v.GetString("network"); network != "" {
		conf.Moneytree.Network = network
	}
	if logFile := v.GetString("log-file"); logFile != "" {
		conf.Log.Path = logFile
	}

	registry := hd.DefaultRegistry()
	if err := moneytree.RegisterNetworks(conf, registry); err != nil {
		return fmt.Errorf("failed to register networks: %w", err)
	}
	chain, err := registry.Get(conf.Moneytree.Network)
	if err != nil {
		return err
	}
	a.Config = conf
	a.Registry = registry
	a.Chain = chain
	a.Log = moneytree.NewLogger(conf.Log)
	a.Out = out
	return nil
}
