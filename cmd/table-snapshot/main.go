// table-snapshot prints one frame of a table view to stdout without
// starting the interactive program. Useful for checking column layout,
// selection highlighting and config files from scripts.
//
// Run: go run ./cmd/table-snapshot/ --csv data.csv --size 80x20 --select 2,1:4,3
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wesen/tableview/internal/cellexpr"
	"github.com/wesen/tableview/internal/config"
	"github.com/wesen/tableview/internal/log"
	"github.com/wesen/tableview/internal/tableui"
	"github.com/wesen/tableview/pkg/tabledata"
	"github.com/wesen/tableview/pkg/tableview"
)

type snapshotOptions struct {
	configFile string
	csvPath    string
	rows, cols int
	width      int
	height     int
	selection  string
	plain      bool
	verbose    bool
}

var errUsage = errors.New("bad usage")

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if opts.verbose {
		log.Enable(os.Stderr)
	}
	if err := snapshot(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (snapshotOptions, error) {
	opts := snapshotOptions{rows: 20, cols: 6, width: 80, height: 12}
	next := func(i *int) (string, error) {
		if *i+1 >= len(args) {
			return "", fmt.Errorf("%s needs a value: %w", args[*i], errUsage)
		}
		*i++
		return args[*i], nil
	}

	for i := 0; i < len(args); i++ {
		var err error
		var v string
		switch args[i] {
		case "-c", "--config":
			opts.configFile, err = next(&i)
		case "--csv":
			opts.csvPath, err = next(&i)
		case "--rows", "--cols":
			name := args[i]
			if v, err = next(&i); err == nil {
				var n int
				if n, err = strconv.Atoi(v); err == nil && n >= 0 {
					if name == "--rows" {
						opts.rows = n
					} else {
						opts.cols = n
					}
				} else {
					err = fmt.Errorf("%s %q: %w", name, v, errUsage)
				}
			}
		case "--size":
			if v, err = next(&i); err == nil {
				opts.width, opts.height, err = parseSize(v)
			}
		case "--select":
			opts.selection, err = next(&i)
		case "--plain":
			opts.plain = true
		case "--verbose":
			opts.verbose = true
		default:
			err = fmt.Errorf("unknown argument %q: %w", args[i], errUsage)
		}
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// parseSize reads "WxH".
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: %w", s, errUsage)
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: %w", s, errUsage)
	}
	return w, h, nil
}

// applySelection reads "row,col" or "row,col:row,col". The first cell
// becomes the anchor and the second the active cell.
func applySelection(tv *tableview.TableView, sel string) error {
	if sel == "" {
		return nil
	}
	from, to, ranged := strings.Cut(sel, ":")
	r0, c0, err := tableui.ParseCellRef(from, 0)
	if err != nil {
		return err
	}
	tv.SetSelection(c0, r0, false)
	if ranged {
		r1, c1, err := tableui.ParseCellRef(to, c0)
		if err != nil {
			return err
		}
		tv.SetSelection(c1, r1, true)
	}
	tv.EnsureSelectedCellIsVisible()
	return nil
}

func snapshot(w io.Writer, opts snapshotOptions) error {
	cfg := config.Default()
	if opts.configFile != "" {
		var err error
		if cfg, err = config.Load(opts.configFile); err != nil {
			return err
		}
	}

	var ds tabledata.Dataset = tabledata.Build(opts.cols, opts.rows)
	if opts.csvPath != "" {
		t, err := tabledata.OpenCSV(opts.csvPath)
		if err != nil {
			return err
		}
		ds = t
	}

	// Unlike the interactive program a bad format expression is an error.
	tv := tableview.New()
	if err := tableui.ApplyConfig(tv, cellexpr.NewEngine(), cfg, true); err != nil {
		return err
	}
	if err := tv.SetTable(ds); err != nil {
		return err
	}
	if err := tv.SetVisibleArea(opts.height, opts.width); err != nil {
		return err
	}
	if err := applySelection(tv, opts.selection); err != nil {
		return err
	}

	if opts.plain {
		buf := tableui.DrawTable(tv, opts.width, opts.height)
		for y := range buf.H {
			if _, err := fmt.Fprintln(w, strings.TrimRight(buf.Line(y), " ")); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintln(w, tableui.RenderTable(tv, opts.width, opts.height))
	return err
}
