// tableview browses a CSV file, or a generated table, in the terminal with
// keyboard and mouse selection.
//
// Run: go run ./cmd/tableview/ --csv data.csv
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/tableview/internal/config"
	"github.com/wesen/tableview/internal/log"
	"github.com/wesen/tableview/internal/tableui"
	"github.com/wesen/tableview/pkg/tabledata"
)

// version is set by ldflags during build
var version = "dev"

const (
	defaultRows = 1000
	defaultCols = 12
)

type cliOptions struct {
	configFile  string
	logFile     string
	csvPath     string
	rows        int
	cols        int
	single      bool
	showHelp    bool
	showVersion bool
}

var errFlagValue = errors.New("flag needs a non-negative number")

func main() {
	opts, err := parseFlagsFromArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if opts.showVersion {
		fmt.Printf("tableview %s\n", version)
		return
	}
	if opts.showHelp {
		printUsage()
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts cliOptions) error {
	configPath, err := config.Path(opts.configFile)
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if opts.single {
		cfg.Table.MultiSelect = false
	}

	setupLogging(opts.logFile, cfg.Log)
	defer log.Disable()

	load, source := loader(opts)
	ds, err := load()
	if err != nil {
		return err
	}
	log.Info("tableview started", "source", source, "config", configPath,
		"rows", ds.RowCount(), "cols", ds.ColumnCount())

	var reload tableui.Loader
	if opts.csvPath != "" {
		reload = load
	}
	m, err := tableui.NewModel(ds, tableui.Options{
		Config:     cfg,
		ConfigPath: configPath,
		Source:     source,
		Reload:     reload,
	})
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}
	return nil
}

// setupLogging turns on the file logger when a path is given on the
// command line or in the config file. Logging problems are reported but
// never stop the program.
func setupLogging(flagPath string, lc config.LogConfig) {
	path := flagPath
	if path == "" {
		path = lc.File
	}
	if path == "" {
		return
	}
	if err := log.EnableFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file %s: %v\n", path, err)
		return
	}
	if flagPath != "" {
		// -l means full debug output regardless of the configured level.
		return
	}
	if lvl, err := log.ParseLevel(lc.Level); err == nil {
		log.SetLevel(lvl)
	}
}

// loader picks the dataset source: a CSV file, or a generated table of
// the requested size.
func loader(opts cliOptions) (tableui.Loader, string) {
	if opts.csvPath != "" {
		path := opts.csvPath
		return func() (tabledata.Dataset, error) {
			t, err := tabledata.OpenCSV(path)
			if err != nil {
				return nil, err
			}
			return t, nil
		}, path
	}
	rows, cols := opts.rows, opts.cols
	return func() (tabledata.Dataset, error) {
		return tabledata.Build(cols, rows), nil
	}, fmt.Sprintf("generated %d×%d", rows, cols)
}

// parseFlagsFromArgs parses the given args and returns options (testable)
func parseFlagsFromArgs(args []string) (cliOptions, error) {
	opts := cliOptions{rows: defaultRows, cols: defaultCols}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-c", "--config":
			if i+1 < len(args) {
				i++
				opts.configFile = args[i]
			}
		case "-l", "--log-file":
			if i+1 < len(args) {
				i++
				opts.logFile = args[i]
			}
		case "--csv":
			if i+1 < len(args) {
				i++
				opts.csvPath = args[i]
			}
		case "--rows", "--cols":
			name := args[i]
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s: %w", name, errFlagValue)
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 0 {
				return opts, fmt.Errorf("%s %q: %w", name, args[i], errFlagValue)
			}
			if name == "--rows" {
				opts.rows = n
			} else {
				opts.cols = n
			}
		case "--single":
			opts.single = true
		case "-h", "--help":
			opts.showHelp = true
		case "-v", "--version":
			opts.showVersion = true
		}
	}
	return opts, nil
}

func printUsage() {
	fmt.Println("tableview - browse tables in the terminal")
	fmt.Println()
	fmt.Println("Usage: tableview [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --csv <path>")
	fmt.Println("        Load a CSV file; the first record holds the column names")
	fmt.Println("  --rows <n>, --cols <n>")
	fmt.Printf("        Size of the generated table when no CSV is given (default %d×%d)\n", defaultRows, defaultCols)
	fmt.Println("  --single")
	fmt.Println("        Disable rectangular multi-cell selection")
	fmt.Println("  -c, --config <path>")
	fmt.Println("        Use custom config file instead of ~/.config/tableview/config.yaml")
	fmt.Println("  -l, --log-file <path>")
	fmt.Println("        Enable debug logging to specified file")
	fmt.Println("  -v, --version")
	fmt.Println("        Show version")
	fmt.Println("  -h, --help")
	fmt.Println("        Show this help message")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  TABLEVIEW_CONFIG=<path>  Use custom config file")
}
