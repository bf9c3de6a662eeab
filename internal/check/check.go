package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/suykerbuyk/pasteblock/internal/clipboard"
	"github.com/suykerbuyk/pasteblock/internal/config"
	"github.com/suykerbuyk/pasteblock/internal/history"
)

// Status represents the outcome of a single check.
type Status int

const (
	Pass Status = iota
	Warn
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Warn:
		return "warn"
	case Fail:
		return "FAIL"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a single check.
type Result struct {
	Name   string
	Status Status
	Detail string
}

// Report aggregates all check results.
type Report struct {
	Results []Result
}

// HasFailures returns true if any result has Fail status.
func (r Report) HasFailures() bool {
	for _, res := range r.Results {
		if res.Status == Fail {
			return true
		}
	}
	return false
}

// Format returns the human-readable report string.
func (r Report) Format() string {
	if len(r.Results) == 0 {
		return "pb check\n\n  no checks ran\n"
	}

	// Find max name length for alignment.
	maxName := 0
	for _, res := range r.Results {
		if len(res.Name) > maxName {
			maxName = len(res.Name)
		}
	}

	var b strings.Builder
	b.WriteString("pb check\n\n")

	var passed, warnings, failures int
	for _, res := range r.Results {
		switch res.Status {
		case Pass:
			passed++
		case Warn:
			warnings++
		case Fail:
			failures++
		}
		fmt.Fprintf(&b, "  %-4s  %-*s  %s\n", res.Status, maxName, res.Name, res.Detail)
	}

	fmt.Fprintf(&b, "\n%d passed, %d warning, %d failure\n", passed, warnings, failures)
	return b.String()
}

// CheckConfig reports the resolved config path. Always passes — broken TOML
// is caught by config.Load before we get here.
func CheckConfig() Result {
	cfgPath := filepath.Join(config.ConfigDir(), "config.toml")
	return Result{
		Name:   "config",
		Status: Pass,
		Detail: config.CompressHome(cfgPath),
	}
}

// CheckOptions validates the segmentation options.
func CheckOptions(cfg config.Config) Result {
	if err := cfg.Validate(); err != nil {
		return Result{Name: "options", Status: Fail, Detail: err.Error()}
	}
	return Result{
		Name:   "options",
		Status: Pass,
		Detail: fmt.Sprintf("max %d, marker %q", cfg.MaxChunkLength, cfg.Marker),
	}
}

// CheckExportDir checks whether the export directory exists.
func CheckExportDir(dir string) Result {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return Result{Name: "export", Status: Pass, Detail: config.CompressHome(dir)}
	}
	return Result{Name: "export", Status: Warn, Detail: config.CompressHome(dir) + " not created yet (made on first export)"}
}

// CheckHistory checks the history database.
func CheckHistory(hcfg config.HistoryConfig) Result {
	if !hcfg.Enabled {
		return Result{Name: "history", Status: Pass, Detail: "disabled"}
	}
	if _, err := os.Stat(hcfg.DBPath); err != nil {
		return Result{Name: "history", Status: Warn, Detail: config.CompressHome(hcfg.DBPath) + " not created yet"}
	}

	db, err := history.Open(hcfg.DBPath)
	if err != nil {
		return Result{Name: "history", Status: Fail, Detail: err.Error()}
	}
	defer db.Close()

	n, err := db.Count()
	if err != nil {
		return Result{Name: "history", Status: Fail, Detail: err.Error()}
	}
	return Result{Name: "history", Status: Pass, Detail: fmt.Sprintf("%s (%d runs)", config.CompressHome(hcfg.DBPath), n)}
}

// CheckClipboard checks whether a system clipboard is reachable.
func CheckClipboard() Result {
	if clipboard.Available() {
		return Result{Name: "clipboard", Status: Pass, Detail: "available"}
	}
	return Result{Name: "clipboard", Status: Warn, Detail: "unavailable on this platform (pb copy will fail)"}
}

// Run executes all checks against the given config and returns a report.
func Run(cfg config.Config) Report {
	var results []Result

	results = append(results, CheckConfig())
	results = append(results, CheckOptions(cfg))
	results = append(results, CheckExportDir(cfg.Export.Dir))
	results = append(results, CheckHistory(cfg.History))
	results = append(results, CheckClipboard())

	return Report{Results: results}
}
