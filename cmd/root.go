package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/0glabs/zk-cli/common/config"
	"github.com/0glabs/zk-cli/namespace"
	"github.com/0glabs/zk-cli/node"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootArgs struct {
		addr           string
		configFile     string
		sessionTimeout time.Duration
		connectTimeout time.Duration

		logLevel         string
		logColorDisabled bool
		noColor          bool
	}

	rootCmd = &cobra.Command{
		Use:           "zk-cli",
		Short:         "Cli around zookeeper",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return initLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// dial opens the session used by a command.
var dial = func(cfg *config.Config) (node.Client, error) {
	return node.NewZkClient(cfg.Addr, node.ZkClientOption{
		SessionTimeout: cfg.SessionTimeout,
		ConnectTimeout: cfg.ConnectTimeout,
		Logger:         logrus.StandardLogger(),
	})
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootArgs.addr, "addr", "a", config.DefaultAddr, "ZooKeeper address, host:port[,host:port...][/chroot]")
	rootCmd.PersistentFlags().StringVar(&rootArgs.configFile, "config", "", "YAML or JSON file with connection settings, overridden by explicit flags")
	rootCmd.PersistentFlags().DurationVar(&rootArgs.sessionTimeout, "session-timeout", config.DefaultSessionTimeout, "ZooKeeper session timeout")
	rootCmd.PersistentFlags().DurationVar(&rootArgs.connectTimeout, "connect-timeout", config.DefaultConnectTimeout, "Time to wait for a session to be established")
	rootCmd.PersistentFlags().StringVar(&rootArgs.logLevel, "log-level", logrus.WarnLevel.String(), "Log level")
	rootCmd.PersistentFlags().BoolVar(&rootArgs.logColorDisabled, "log-color-disabled", false, "Force to disable colorful logs")
	rootCmd.PersistentFlags().BoolVar(&rootArgs.noColor, "no-color", false, "Print node names without styling")
}

func initLog() error {
	formatter := logrus.TextFormatter{
		FullTimestamp: true,
	}

	if rootArgs.logColorDisabled {
		formatter.DisableColors = true
	} else {
		formatter.ForceColors = true
	}

	logrus.SetFormatter(&formatter)

	level, err := logrus.ParseLevel(rootArgs.logLevel)
	if err != nil {
		return errors.WithMessagef(err, "failed to parse log level %q", rootArgs.logLevel)
	}

	logrus.SetLevel(level)

	return nil
}

// loadConfig resolves connection settings: defaults, then the config file,
// then flags given on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewDefaultConfig()

	if rootArgs.configFile != "" {
		override, err := config.LoadConfigOverrideFile(rootArgs.configFile)
		if err != nil {
			return nil, err
		}
		cfg.Merge(override)
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = rootArgs.addr
	}
	if flags.Changed("session-timeout") {
		cfg.SessionTimeout = rootArgs.sessionTimeout
	}
	if flags.Changed("connect-timeout") {
		cfg.ConnectTimeout = rootArgs.connectTimeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// connect opens a session for cmd. Callers must close the returned client.
func connect(cmd *cobra.Command) (node.Client, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	client, err := dial(cfg)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to connect to %v", cfg.Addr)
	}

	return client, nil
}

func formatter() namespace.Formatter {
	if rootArgs.noColor {
		return namespace.Formatter{Color: namespace.ColorNever}
	}
	return namespace.Formatter{Color: namespace.ColorAuto}
}

// normalize turns a path argument into a node path, warning about rewrites.
func normalize(raw string) string {
	return node.NormalizePath(raw, logrus.StandardLogger())
}

// Execute is the command line entrypoint.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
