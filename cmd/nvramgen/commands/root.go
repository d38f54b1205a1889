package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nvramgen/internal/app"
	"nvramgen/internal/services/diffing"
	"nvramgen/internal/services/dump"
	"nvramgen/internal/services/script"
	"nvramgen/internal/services/section"
	"nvramgen/internal/store"
)

var (
	cfgFile  string
	verbose  bool
	noCommit bool

	appCtx *app.App
	runCfg app.Config
)

func Execute() error {
	root := &cobra.Command{
		Use:   "nvramgen",
		Short: "Generate a shell script replaying non-default NVRAM settings",
		Long: "nvramgen diffs a router's NVRAM dump against the firmware defaults " +
			"and writes an idempotent shell script of nvram set commands, grouped " +
			"by configuration section.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			v := viper.New()
			app.SetDefaults(v)
			if err := readConfigFile(v, log); err != nil {
				return err
			}
			bindFlags(cmd, v)

			runCfg = app.ConfigFromViper(v)
			if noCommit {
				runCfg.Commit = false
			}

			custom, err := app.CustomRules(v)
			if err != nil {
				return err
			}

			wd, err := os.Getwd()
			if err != nil {
				return err
			}

			appCtx = app.New(
				dump.New(log),
				diffing.New(log),
				section.New(log, custom...),
				script.New(log, script.Options{Commit: runCfg.Commit}),
				store.NewWorkspace(wd),
			)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := appCtx.Generate(runCfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d settings written to %s\n", res.Count, res.Path)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./nvramgen.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringP("input", "i", app.DefaultInput, "current dump file")
	root.PersistentFlags().StringP("base", "b", app.DefaultBase, "defaults dump file")
	root.Flags().StringP("output", "o", app.DefaultOutput, "output script file")
	root.Flags().BoolVar(&noCommit, "no-commit", false, "omit the trailing nvram commit")

	root.AddCommand(diffCmd(), sectionsCmd())
	return root.Execute()
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// readConfigFile loads cfgFile, or ./nvramgen.yaml when unset. A missing
// default config file is fine; a missing explicit one is an error.
func readConfigFile(v *viper.Viper, log *logrus.Logger) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("nvramgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		if cfgFile == "" && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	log.WithField("file", v.ConfigFileUsed()).Debug("loaded config")
	return nil
}

// bindFlags lets explicitly set flags override config file values.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	for _, name := range []string{"input", "base", "output"} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			v.Set(name, f.Value.String())
		}
	}
}
