package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/cowor/colorspace"
	"github.com/mmuldo/cowor/render"
)

// options carries the configuration shared by every subcommand.
type options struct {
	cfgFile string
	v       *viper.Viper
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	o := &options{v: viper.New(), log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "cowor",
		Short: "Convert colors between sRGB, CIEXYZ, CIELAB and CIELCh",
		Long: `cowor converts colors between the sRGB, CIE 1931 XYZ, CIE 1976 L*a*b*
and cylindrical LCh color spaces, using a D65 white point.

Settings are read from $HOME/.cowor.yaml, a .env file in the working
directory and COWOR_* environment variables, in increasing priority.
Flags override all of them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.initConfig(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&o.cfgFile, "config", "", "config file (default is $HOME/.cowor.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.StringP("format", "f", string(render.FormatText), "output format: text, json or yaml")
	flags.Int("precision", 4, "digits after the decimal point")
	flags.String("template", "", "pongo2 template file for text output")
	for _, key := range []string{"verbose", "format", "precision", "template"} {
		o.v.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(newConvertCmd(o), newInspectCmd(o), newVerifyCmd(o))
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	// A missing .env file is fine; variables may come from the shell.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
	}
	return newRootCmd().Execute()
}

// initConfig reads in config file and ENV variables if set, then builds
// the CLI logger and hands the same handler to the colorspace package.
func (o *options) initConfig(cmd *cobra.Command) error {
	if o.cfgFile != "" {
		o.v.SetConfigFile(o.cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		o.v.AddConfigPath(home)
		o.v.SetConfigType("yaml")
		o.v.SetConfigName(".cowor")
	}

	o.v.SetEnvPrefix("cowor")
	o.v.AutomaticEnv()

	if err := o.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	level := slog.LevelWarn
	if o.v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	o.log = slog.New(handler).With("component", "cli")
	colorspace.SetLogger(slog.New(handler))

	if f := o.v.ConfigFileUsed(); f != "" {
		o.log.Debug("using config file", "path", f)
	}
	return nil
}

func (o *options) renderer() (*render.Renderer, error) {
	format, err := render.ParseFormat(o.v.GetString("format"))
	if err != nil {
		return nil, err
	}
	tpl := o.v.GetString("template")
	if tpl != "" {
		if tpl, err = homedir.Expand(tpl); err != nil {
			return nil, err
		}
	}
	return render.New(format, o.v.GetInt("precision"), tpl)
}
