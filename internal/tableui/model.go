// Package tableui is the interactive Bubbletea front end of the table view:
// keyboard and mouse drive the selection engine, and the view composes the
// table, a side panel and the chrome with Lipgloss layers.
package tableui

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/wesen/tableview/internal/cellexpr"
	"github.com/wesen/tableview/internal/config"
	"github.com/wesen/tableview/internal/log"
	"github.com/wesen/tableview/pkg/tabledata"
	"github.com/wesen/tableview/pkg/tableview"
)

const (
	panelWidth    = 32
	maxEvents     = 50
	wheelStep     = 3
	wheelColsStep = 1
)

// Loader produces a fresh dataset, for example by re-reading a CSV file.
type Loader func() (tabledata.Dataset, error)

// Options configure a Model.
type Options struct {
	Config     *config.File
	ConfigPath string
	// Source names the dataset in the toolbar.
	Source string
	// Reload, when set, is bound to the r key.
	Reload Loader
}

// eventLog keeps the most recent selection changes. It is shared by
// pointer because the selection callback outlives any single Model value.
type eventLog struct {
	entries []string
	total   int
}

func (l *eventLog) add(s string) {
	l.total++
	l.entries = append(l.entries, s)
	if len(l.entries) > maxEvents {
		l.entries = l.entries[len(l.entries)-maxEvents:]
	}
}

// last returns up to n entries, newest last.
func (l *eventLog) last(n int) []string {
	if n <= 0 {
		return nil
	}
	return l.entries[max(len(l.entries)-n, 0):]
}

// Model is the main application state.
type Model struct {
	Width, Height  int
	MouseX, MouseY int

	Table *tableview.TableView

	cfg        *config.File
	configPath string
	source     string
	reload     Loader
	engine     *cellexpr.Engine

	events  *eventLog
	lastErr string
	status  string

	// Mouse drag state
	dragging bool

	// Go-to prompt state
	gotoOpen  bool
	gotoInput textinput.Model
}

// NewModel wires a TableView over ds and applies the configuration. Bad
// column expressions are reported in the footer and leave the column
// unformatted; they do not fail construction.
func NewModel(ds tabledata.Dataset, opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	m := Model{
		Table:      tableview.New(),
		cfg:        cfg,
		configPath: opts.ConfigPath,
		source:     opts.Source,
		reload:     opts.Reload,
		engine:     cellexpr.NewEngine(),
		events:     &eventLog{},
	}
	if m.source == "" {
		m.source = "untitled"
	}

	if err := m.Table.SetTable(ds); err != nil {
		return Model{}, fmt.Errorf("new model: %w", err)
	}
	if err := m.applyConfig(); err != nil {
		m.lastErr = err.Error()
		log.Warn("column config", "error", err)
	}

	events := m.events
	m.Table.OnSelectedCellChanged(func(e tableview.SelectedCellChangedEvent) {
		events.add(fmt.Sprintf("(%d,%d) → (%d,%d)", e.OldRow, e.OldCol, e.NewRow, e.NewCol))
		log.Debug("selected cell changed",
			"old_row", e.OldRow, "old_col", e.OldCol,
			"new_row", e.NewRow, "new_col", e.NewCol)
	})
	return m, nil
}

// applyConfig copies the configuration onto the view. Expression compile
// failures are reported, not fatal.
func (m *Model) applyConfig() error {
	return ApplyConfig(m.Table, m.engine, m.cfg, false)
}

// ApplyConfig copies table flags and column styles from cfg onto tv. With
// strict set the first bad format expression is returned before any
// further column is touched. Otherwise the column keeps its alignment and
// widths, renders unformatted, and all compile failures are joined into
// one error.
func ApplyConfig(tv *tableview.TableView, engine *cellexpr.Engine, cfg *config.File, strict bool) error {
	tc := cfg.Table
	tv.SetMultiSelect(tc.MultiSelect)
	tv.FullRowSelect = tc.FullRowSelect
	tv.ShowHeaders = tc.ShowHeaders
	tv.MaxCellWidth = tc.MaxCellWidth

	var errs []error
	for _, col := range cfg.Columns {
		st := tableview.ColumnStyle{
			Alignment: col.Alignment(),
			MinWidth:  col.MinWidth,
			MaxWidth:  col.MaxWidth,
		}
		if col.Format != "" {
			expr, err := engine.Compile(col.Name, col.Format)
			switch {
			case err != nil && strict:
				return err
			case err != nil:
				errs = append(errs, err)
			default:
				st.Format = expr.Format
			}
		}
		tv.SetColumnStyle(col.Name, st)
	}
	return errors.Join(errs...)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Events returns up to n recent selection changes, newest last.
func (m Model) Events(n int) []string { return m.events.last(n) }

// LastError is the message shown in the footer, if any.
func (m Model) LastError() string { return m.lastErr }

func (m *Model) setErr(err error) {
	if err == nil {
		m.lastErr = ""
		return
	}
	m.lastErr = err.Error()
	log.Error("tableui", "error", err)
}
