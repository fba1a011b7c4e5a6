package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pairctl/internal/app"

	"github.com/spf13/cobra"
)

// rootFlags holds the flags of the interactive builder.
type rootFlags struct {
	output     string
	pretty     bool
	indent     string
	configPath string
	debug      bool
	debugLog   string
}

var flags rootFlags

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pairctl",
	Short: "Build a flat JSON object from key/value pairs in your terminal",
	Long: `pairctl opens an interactive editor where you enter key/value pairs one
at a time. When you quit it asks whether to output the collected pairs as a
JSON object, written to stdout or to the file given with --output.

Keys keep the order in which they were first entered. Entering an existing
key again replaces its value in place. All values are strings.`,
	Args: cobra.NoArgs,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// that are not caused by bad invocation
	SilenceUsage: true,
	RunE:         runRoot,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "pairctl version %s\n" .Version}}`)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newConfigCmd())

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file to use instead of the user and project config files")

	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", `write the JSON object to this file instead of stdout ("-" for stdout)`)
	rootCmd.Flags().BoolVar(&flags.pretty, "pretty", false, "indent the JSON object")
	rootCmd.Flags().StringVar(&flags.indent, "indent", "", "indent string for pretty output (implies --pretty)")
	rootCmd.Flags().BoolVar(&flags.debug, "debug", false, "write a debug log while the editor runs")
	rootCmd.Flags().StringVar(&flags.debugLog, "debug-log", app.DefaultDebugLogPath, "path of the debug log written with --debug")
}

// runRoot runs the interactive builder.
func runRoot(cmd *cobra.Command, args []string) error {
	cfg := buildAppConfig(cmd, flags)

	application, err := app.NewApplication(cfg)
	if err != nil {
		return err
	}
	return application.Run(cmd.Context())
}

// buildAppConfig maps flags onto the application config. Output layout
// flags only override the config file when given explicitly.
func buildAppConfig(cmd *cobra.Command, f rootFlags) *app.Config {
	cfg := app.NewConfig(f.debug, f.debugLog, f.configPath, f.output)
	if cmd.Flags().Changed("pretty") {
		pretty := f.pretty
		cfg.Pretty = &pretty
	}
	if cmd.Flags().Changed("indent") {
		indent := f.indent
		cfg.Indent = &indent
	}
	return cfg
}
