package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/wavescale/pkg/cli"
)

const appName = "wavescale"

var (
	// Global flags
	cfgFile     string
	profileName string
	outputJSON  bool
	verbose     bool

	// Global configuration
	globalConfig *cli.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wavescale",
	Short: "Synthesize waveforms and render musical scales to PCM audio",
	Long: `wavescale - render sine, square, triangle and sawtooth tones and
assemble them into major and minor scales over the 88-key piano range.

Configuration is stored in ~/.giztoy/wavescale/config.yaml and holds named
render profiles (sample rate, duration, amplitude, shape, output format).

Examples:
  # Random start note, major and minor scale, written to the current dir
  wavescale scale

  # Fixed start note and a square-wave timbre
  wavescale scale --start A4 --shape square --out renders/

  # Save a profile and make it the default
  wavescale config add-profile lofi --sample-rate 8000 --format raw
  wavescale config use-profile lofi

  # Look at a waveform
  wavescale plot --shape sawtooth --freq 220`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "", "", "config file (default is ~/.giztoy/wavescale/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "", "render profile to use (default: current profile)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output as JSON (for piping)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(toneCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	var err error
	globalConfig, err = cli.LoadConfigWithPath(appName, cfgFile)
	if err != nil {
		// Rendering still works on built-in defaults without a config.
		fmt.Fprintf(os.Stderr, "Warning: %s config: %v\n", appName, err)
	}
}

// getConfig returns the global configuration
func getConfig() (*cli.Config, error) {
	if globalConfig == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return globalConfig, nil
}

// outputResult prints result as YAML, or JSON with --json.
func outputResult(result any) error {
	format := cli.FormatYAML
	if outputJSON {
		format = cli.FormatJSON
	}
	return cli.Output(result, cli.OutputOptions{Format: format})
}
