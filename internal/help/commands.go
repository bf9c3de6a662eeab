package help

import "strings"

// Version is the pb release version, set at build time via -ldflags.
// Defaults to "dev" when built without version injection (e.g. `go run`).
var Version = "dev"

// Flag describes a command-line flag.
type Flag struct {
	Name string // e.g. "--max <n>" or "--show"
	Desc string
}

// Arg describes a positional argument.
type Arg struct {
	Name     string // e.g. "file"
	Desc     string
	Optional bool
}

// Command describes a pb subcommand (or the top-level binary when Name is "").
type Command struct {
	Name        string   // "split", "export", etc; "" for top-level
	Synopsis    string   // one-line description (lowercase, for --help header)
	Brief       string   // short description for usage table (capitalized)
	Usage       string   // full usage line, e.g. "pb split <file> [--max <n>]"
	TableUsage  string   // shortened usage for the top-level table (if different from Usage)
	Args        []Arg
	Flags       []Flag
	Description string   // multi-line prose (stored verbatim)
	Examples    []string // one per line, without leading 2-space indent
	SeeAlso     []string // man page cross-refs, e.g. "pb(1)"
}

// tableUsage returns TableUsage if set, otherwise Usage.
func (c Command) tableUsage() string {
	if c.TableUsage != "" {
		return c.TableUsage
	}
	return c.Usage
}

// ManName returns the man page name: "pb" for top-level, "pb-<name>" for subs.
func (c Command) ManName() string {
	if c.Name == "" {
		return "pb"
	}
	return "pb-" + strings.ReplaceAll(c.Name, " ", "-")
}

// TopLevel is the top-level pb command (used by FormatUsage).
var TopLevel = Command{
	Name:     "",
	Synopsis: "pasteblock document splitter",
}

var CmdSplit = Command{
	Name:       "split",
	Synopsis:   "segment a document into paste-sized blocks",
	Brief:      "Segment a document into blocks",
	Usage:      "pb split <file> [--max <n>] [--marker <s>] [--show]",
	TableUsage: "pb split <file> [--show]",
	Args: []Arg{
		{Name: "file", Desc: "Source document (.docx or plain text)"},
	},
	Flags: []Flag{
		{Name: "--max <n>", Desc: "Maximum block length in characters (default: from config)"},
		{Name: "--marker <s>", Desc: "Marker substring that triggers classification (default: from config)"},
		{Name: "--show", Desc: "Print each block's content below its header"},
	},
	Description: `Extracts the document's text, normalizes line endings, and splits it
into blocks of at most the configured length, breaking at line
boundaries where possible. The first block containing the marker is
tagged MARKER_FIRST; every later block is AFTER_MARKER; everything
before is NORMAL.

Prints a run summary and a per-block table. Each run is also recorded
in the history log (metadata only, never content).`,
	Examples: []string{
		"pb split notes.docx              Split with configured defaults",
		"pb split draft.txt --max 2000    Fit blocks into 2000 characters",
		"pb split draft.txt --show        Include block contents in output",
	},
	SeeAlso: []string{"pb(1)", "pb-export(1)", "pb-copy(1)"},
}

var CmdCopy = Command{
	Name:       "copy",
	Synopsis:   "copy one block to the clipboard",
	Brief:      "Copy one block to the clipboard",
	Usage:      "pb copy <file> --block <n> [--max <n>] [--marker <s>]",
	TableUsage: "pb copy <file> --block <n>",
	Args: []Arg{
		{Name: "file", Desc: "Source document (.docx or plain text)"},
	},
	Flags: []Flag{
		{Name: "--block <n>", Desc: "1-based block number to copy"},
		{Name: "--max <n>", Desc: "Maximum block length in characters (default: from config)"},
		{Name: "--marker <s>", Desc: "Marker substring (default: from config)"},
	},
	Description: `Segments the document and places the selected block's exact content in
the system clipboard. Nothing is written to disk. A clipboard failure
is reported as a warning; the segmentation result itself is unaffected.`,
	Examples: []string{
		"pb copy notes.docx --block 1    Copy the first block",
		"pb copy notes.docx --block 3    Copy the third block",
	},
	SeeAlso: []string{"pb(1)", "pb-split(1)"},
}

var CmdExport = Command{
	Name:       "export",
	Synopsis:   "write each block to its own file",
	Brief:      "Write each block to its own file",
	Usage:      "pb export <file> [--out <dir>] [--compress] [--max <n>] [--marker <s>]",
	TableUsage: "pb export <file> [--out <dir>]",
	Args: []Arg{
		{Name: "file", Desc: "Source document (.docx or plain text)"},
	},
	Flags: []Flag{
		{Name: "--out <dir>", Desc: "Export directory (default: from config)"},
		{Name: "--compress", Desc: "Write zstd-compressed block files (.txt.zst)"},
		{Name: "--max <n>", Desc: "Maximum block length in characters (default: from config)"},
		{Name: "--marker <s>", Desc: "Marker substring (default: from config)"},
	},
	Description: `Segments the document and writes one file per block into the export
directory, named by 1-based sequential index (0001.txt, 0002.txt, ...)
regardless of classification. Files contain the block's exact content
with no header or footer. With --compress each file is zstd-compressed.`,
	Examples: []string{
		"pb export notes.docx                 Export to the configured directory",
		"pb export notes.docx --out ./blocks  Export to a specific directory",
		"pb export notes.docx --compress      Export compressed block files",
	},
	SeeAlso: []string{"pb(1)", "pb-split(1)"},
}

var CmdWatch = Command{
	Name:       "watch",
	Synopsis:   "re-segment whenever the document changes",
	Brief:      "Re-segment whenever the document changes",
	Usage:      "pb watch <file> [--max <n>] [--marker <s>]",
	TableUsage: "pb watch <file>",
	Args: []Arg{
		{Name: "file", Desc: "Source document to watch"},
	},
	Flags: []Flag{
		{Name: "--max <n>", Desc: "Maximum block length in characters (default: from config)"},
		{Name: "--marker <s>", Desc: "Marker substring (default: from config)"},
	},
	Description: `Watches the source document and re-runs extraction and segmentation
after each save, printing a fresh run summary. Save bursts are
debounced (watch.debounce_ms). The previous result stays valid until a
new run succeeds: extraction errors print a warning and keep waiting.

Stop with Ctrl-C.`,
	Examples: []string{
		"pb watch draft.docx    Re-split after every save",
	},
	SeeAlso: []string{"pb(1)", "pb-split(1)"},
}

var CmdHistory = Command{
	Name:       "history",
	Synopsis:   "show recent segmentation runs",
	Brief:      "Show recent segmentation runs",
	Usage:      "pb history [--limit <n>]",
	TableUsage: "pb history",
	Flags: []Flag{
		{Name: "--limit <n>", Desc: "Number of runs to show (default: 20)"},
	},
	Description: `Lists recent runs from the history log: source document, block count,
character total, configured maximum, and whether the marker was found.
Only run metadata is stored; block contents are never persisted.`,
	Examples: []string{
		"pb history              Show the last 20 runs",
		"pb history --limit 5    Show the last 5 runs",
	},
	SeeAlso: []string{"pb(1)", "pb-split(1)"},
}

var CmdCheck = Command{
	Name:     "check",
	Synopsis: "validate config and environment",
	Brief:    "Validate config and environment",
	Usage:    "pb check",
	Description: `Runs diagnostic checks and prints a pass/warn/FAIL report:
  - Config file location
  - Segmentation options (max length, marker)
  - Export directory
  - History database validity and run count
  - Clipboard availability

Exit code 0 if all checks pass or warn, 1 if any check fails.`,
	SeeAlso: []string{"pb(1)", "pb-init(1)"},
}

var CmdInit = Command{
	Name:     "init",
	Synopsis: "write a default config file",
	Brief:    "Write a default config file",
	Usage:    "pb init",
	Description: `Writes a default config to ~/.config/pasteblock/config.toml. An
existing config file is left untouched.`,
	Examples: []string{
		"pb init    Create the default config",
	},
	SeeAlso: []string{"pb(1)", "pb-check(1)"},
}

var CmdVersion = Command{
	Name:     "version",
	Synopsis: "print version",
	Brief:    "Print version",
	Usage:    "pb version",
	SeeAlso:  []string{"pb(1)"},
}

// Subcommands is the ordered list of all subcommands.
var Subcommands = []Command{
	CmdSplit,
	CmdCopy,
	CmdExport,
	CmdWatch,
	CmdHistory,
	CmdCheck,
	CmdInit,
	CmdVersion,
}
