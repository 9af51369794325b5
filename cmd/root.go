package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopak/minigrep/internal/assets"
	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/logging"
	"github.com/gopak/minigrep/internal/search"
	"github.com/gopak/minigrep/internal/ui/console"
	"github.com/spf13/cobra"
)

var cfgFile string
var verbose bool
var version = "dev"

// lookupEnv is replaced in tests.
var lookupEnv config.LookupEnv = os.LookupEnv

var rootCmd = &cobra.Command{
	Use:   "minigrep [flags] [--] <query> <filename>",
	Short: "Print the lines of a file that contain a query",
	Long: "Print the lines of a file that contain a query.\n\n" +
		"Set " + config.CaseInsensitiveEnv + " (to any value) to ignore case.\n" +
		"Put -- before a query that starts with '-': minigrep -- -x notes.txt",
	Args:              cobra.ArbitraryArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return initSettings() },
	PersistentPostRun: func(cmd *cobra.Command, args []string) { logging.Close() },
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New(append([]string{cmd.Name()}, args...), lookupEnv)
		if err != nil {
			return err
		}
		logging.Debug(fmt.Sprintf("search %q in %s (case sensitive: %v)", cfg.Query, cfg.Filename, cfg.CaseSensitive))
		res, err := search.Run(cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if logging.Verbose() {
			fmt.Fprint(logging.Writer(), console.RenderSummary(cfg, res.Matches))
		}
		return nil
	},
}

// invocation holds the raw arguments of the current run for flagError.
var invocation []string

// Execute runs the root command on the process arguments and reports failures on stderr.
func Execute() error { return executeArgs(os.Args[1:]) }

func executeArgs(args []string) error {
	if args == nil {
		args = []string{}
	}
	invocation = args
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	if errors.Is(err, config.ErrNotEnoughArguments) {
		logging.Error("Problem parsing arguments: " + err.Error())
	} else {
		logging.Error("Application error: " + err.Error())
	}
	logging.Close()
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML settings file (default: ~/.config/minigrep/config.yaml when present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show debug lines and a run summary on stderr")
	rootCmd.Version = version
	rootCmd.SetFlagErrorFunc(flagError)
}

// flagError reports a too-short argument list as ErrNotEnoughArguments even when the
// query looked like a flag, and otherwise points at the -- separator.
func flagError(cmd *cobra.Command, err error) error {
	if countPositional(invocation) < 2 {
		return config.ErrNotEnoughArguments
	}
	return fmt.Errorf("%w (put -- before a query that starts with '-')", err)
}

// countPositional counts the arguments that are not minigrep's own flags. Unknown
// dash arguments count, they were meant as a query.
func countPositional(args []string) int {
	n := 0
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return n + len(args) - i - 1
		case a == "--config":
			i++
		case strings.HasPrefix(a, "--config="),
			a == "-v", a == "--verbose", a == "--version", a == "-h", a == "--help":
		default:
			n++
		}
	}
	return n
}

func settingsFiles() ([]string, error) {
	if cfgFile != "" {
		low := strings.ToLower(cfgFile)
		if !strings.HasSuffix(low, ".yaml") && !strings.HasSuffix(low, ".yml") {
			return nil, fmt.Errorf("%s: not a YAML file", cfgFile)
		}
		if _, err := os.Stat(cfgFile); err != nil {
			return nil, err
		}
		return []string{cfgFile}, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, nil
	}
	p := filepath.Join(dir, "minigrep", "config.yaml")
	if _, err := os.Stat(p); err != nil {
		return nil, nil
	}
	return []string{p}, nil
}

func initSettings() error {
	files, err := settingsFiles()
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	s, err := config.LoadDefaultsAndFiles(assets.DefaultSettings, files)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if err := config.ValidateAgainstSchema(s); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if err := logging.Init(s.LogFile); err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	logging.SetVerbose(verbose || s.Verbose)
	if len(files) > 0 {
		logging.Debug("settings loaded from " + files[0])
	}
	return nil
}
