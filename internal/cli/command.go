package cli

import (
	"fmt"

	"rubick-translator/internal/config"
	"rubick-translator/internal/logging"
	"rubick-translator/internal/services"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Version is overridden at build time.
var Version = "dev"

type runner struct {
	flags *Flags
	v     *viper.Viper
	svc   *services.Services
	log   *zap.SugaredLogger
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	r := &runner{flags: flags, v: viper.New()}
	rootCmd := &cobra.Command{
		Use:   "rtrans",
		Short: "Quick machine translation from the terminal",
		Long: `rtrans translates text through LibreTranslate, MyMemory, a Google-compatible
endpoint or Tencent Cloud, sharing settings and history with the desktop app.

Examples:
  rtrans translate hello                 # provider and target from settings
  rtrans translate -p mymemory -t de hi  # explicit provider and target
  rtrans history export --format json    # dump history as JSON
  rtrans settings set tencent_SID=... tencent_SKEY=...`,
		Version:            Version,
		SilenceUsage:       true,
		PersistentPreRunE:  r.setup,
		PersistentPostRunE: r.teardown,
	}

	setupFlags(rootCmd, flags, r.v)

	rootCmd.AddCommand(
		r.translateCommand(),
		r.historyCommand(),
		r.settingsCommand(),
		r.providersCommand(),
	)
	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags, v *viper.Viper) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.rtrans.yaml)")
	pf.StringVar(&flags.DBPath, "db", "", "path of the SQLite store")
	pf.StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&flags.Ephemeral, "ephemeral", false, "keep settings and history in memory only")
	pf.StringVarP(&flags.Output, "output", "o", flags.Output, "output format: text or yaml")

	bindFlagsToViper(cmd, v)
}

func bindFlagsToViper(cmd *cobra.Command, v *viper.Viper) {
	_ = v.BindPFlag(config.KeyDBPath, cmd.PersistentFlags().Lookup("db"))
	_ = v.BindPFlag(config.KeyLogLevel, cmd.PersistentFlags().Lookup("log-level"))
}

func (r *runner) setup(cmd *cobra.Command, args []string) error {
	if r.flags.Output != "text" && r.flags.Output != "yaml" {
		return fmt.Errorf("unknown output format %q", r.flags.Output)
	}
	if err := config.Init(r.v, r.flags.CfgFile); err != nil {
		return err
	}
	cfg := config.Load(r.v)

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	svc, err := services.Open(cfg, r.flags.Ephemeral, log)
	if err != nil {
		return err
	}
	svc.API.MarkReady(cmd.Context())

	r.log, r.svc = log, svc
	return nil
}

func (r *runner) teardown(cmd *cobra.Command, args []string) error {
	if r.log != nil {
		_ = r.log.Sync()
	}
	if r.svc != nil {
		return r.svc.Close()
	}
	return nil
}
