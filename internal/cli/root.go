package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type options struct {
	configPath string
	port       string
	logLevel   string
	envFile    string
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "hoops-trivia",
		Short:         "Basketball trivia games for young fans, played over WebSocket",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load %s: %w", opts.envFile, err)
			}
			bindEnv(cmd.Flags())
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	flags.StringVar(&opts.configPath, "config", "config/config.yaml", "path to YAML config (env: TRIVIA_CONFIG)")
	flags.StringVarP(&opts.port, "port", "p", "", "port to listen on, overrides config (env: TRIVIA_PORT)")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error, overrides config (env: TRIVIA_LOG_LEVEL)")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	cmd.AddCommand(NewStartCmd(opts))
	cmd.AddCommand(NewMigrateCmd(opts))
	cmd.AddCommand(NewSeedCmd(opts))
	cmd.CompletionOptions.HiddenDefaultCmd = true
	return cmd
}

// bindEnv fills unset flags from TRIVIA_* variables.
func bindEnv(flags *pflag.FlagSet) {
	v := viper.New()
	v.SetEnvPrefix("TRIVIA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	flags.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = flags.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}
