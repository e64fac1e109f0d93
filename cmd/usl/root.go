package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	configErr error

	// logger is set up before any subcommand runs.
	logger *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "usl",
	Short: "Upgrade Spec Language tools",
	Long: `usl parses Upgrade Spec Language text such as "a{2XD}->(b,c)->d" and
renders the upgrade tree it describes as Graphviz DOT, Mermaid, an image or a
terminal tree.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.usl.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().String("ids", "counter", "Visual node ids (counter, uuid)")
	rootCmd.PersistentFlags().String("rankdir", "BT", "Graph direction (BT, TB, LR, RL)")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("ids", rootCmd.PersistentFlags().Lookup("ids"))
	_ = viper.BindPFlag("rankdir", rootCmd.PersistentFlags().Lookup("rankdir"))

	viper.SetDefault("colors.neutral", "black")
	viper.SetDefault("colors.inclusive", "blue")
	viper.SetDefault("colors.exclusive", "red")
	viper.SetDefault("dot_binary", "dot")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".usl")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("USL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing default config file is fine; a missing --config is not.
	configErr = viper.ReadInConfig()
	if _, ok := configErr.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
		configErr = nil
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	if configErr != nil {
		return configErr
	}
	l, err := newLogger(viper.GetString("log_level"), viper.GetString("log_format"), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger = l
	if f := viper.ConfigFileUsed(); f != "" {
		logger.WithField("path", f).Debug("loaded config")
	}
	return nil
}
