package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/suykerbuyk/pasteblock/internal/blocks"
	"github.com/suykerbuyk/pasteblock/internal/check"
	"github.com/suykerbuyk/pasteblock/internal/clipboard"
	"github.com/suykerbuyk/pasteblock/internal/config"
	"github.com/suykerbuyk/pasteblock/internal/export"
	"github.com/suykerbuyk/pasteblock/internal/extract"
	"github.com/suykerbuyk/pasteblock/internal/help"
	"github.com/suykerbuyk/pasteblock/internal/history"
	"github.com/suykerbuyk/pasteblock/internal/render"
	"github.com/suykerbuyk/pasteblock/internal/watch"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	// Per-command --help is answered before config loads so a broken
	// config file never blocks the help text.
	if hasFlag(args, "--help") || hasFlag(args, "-h") {
		for _, c := range help.Subcommands {
			if c.Name == cmd {
				fmt.Print(help.FormatTerminal(c))
				return
			}
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("load config: %v", err)
	}

	switch cmd {
	case "split":
		if len(args) < 1 {
			fatal("usage: %s", help.CmdSplit.Usage)
		}
		source := args[0]
		res := segment(source, splitOptions(cfg, args))
		fmt.Print(render.Run(source, res, maxLength(cfg, args), hasFlag(args, "--show")))
		recordRun(cfg, source, res, maxLength(cfg, args))

	case "copy":
		if len(args) < 1 {
			fatal("usage: %s", help.CmdCopy.Usage)
		}
		source := args[0]
		n := intFlag(args, "--block", 0)
		if n < 1 {
			fatal("copy: --block <n> is required (1-based)")
		}
		res := segment(source, splitOptions(cfg, args))
		if n > res.BlockCount {
			fatal("copy: block %d out of range (document has %d blocks)", n, res.BlockCount)
		}
		if err := clipboard.Copy(render.Block(res.Blocks[n-1])); err != nil {
			fatal("copy: %v", err)
		}
		fmt.Printf("copied block %d/%d (%s)\n", n, res.BlockCount, res.Blocks[n-1].ID)

	case "export":
		if len(args) < 1 {
			fatal("usage: %s", help.CmdExport.Usage)
		}
		source := args[0]
		dir := cfg.Export.Dir
		if v := flagValue(args, "--out"); v != "" {
			dir = v
		}
		compress := cfg.Export.Compress || hasFlag(args, "--compress")
		res := segment(source, splitOptions(cfg, args))
		paths, err := export.Blocks(res, dir, compress)
		if err != nil {
			fatal("export: %v", err)
		}
		fmt.Printf("exported %d blocks to %s\n", len(paths), config.CompressHome(dir))
		recordRun(cfg, source, res, maxLength(cfg, args))

	case "watch":
		if len(args) < 1 {
			fatal("usage: %s", help.CmdWatch.Usage)
		}
		source := args[0]
		opts := splitOptions(cfg, args)

		// Initial run, then re-run on every save. A failed re-run keeps
		// the previous output valid and the watch alive.
		rerun := func() {
			text, err := extract.File(source)
			if err != nil {
				log.Printf("warning: extract %s: %v", source, err)
				return
			}
			res, err := blocks.Split(text, opts)
			if err != nil {
				log.Printf("warning: split %s: %v", source, err)
				return
			}
			fmt.Print(render.Run(source, res, maxLength(cfg, args), false))
			recordRun(cfg, source, res, maxLength(cfg, args))
		}
		rerun()

		stop := make(chan struct{})
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigs
			close(stop)
		}()

		debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
		if err := watch.File(source, debounce, stop, rerun); err != nil {
			fatal("watch: %v", err)
		}

	case "history":
		if !cfg.History.Enabled {
			fmt.Println("history is disabled (history.enabled = false)")
			return
		}
		db, err := history.Open(cfg.History.DBPath)
		if err != nil {
			fatal("history: %v", err)
		}
		defer db.Close()
		entries, err := db.Recent(intFlag(args, "--limit", 20))
		if err != nil {
			fatal("history: %v", err)
		}
		fmt.Print(history.Format(entries))

	case "check":
		report := check.Run(cfg)
		fmt.Print(report.Format())
		if report.HasFailures() {
			os.Exit(1)
		}

	case "init":
		path, err := config.WriteDefault()
		if err != nil {
			fatal("init: %v", err)
		}
		fmt.Printf("config: %s\n", config.CompressHome(path))

	case "version":
		fmt.Printf("pb v%s (pasteblock)\n", help.Version)

	case "help", "--help", "-h":
		usage()

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

// segment extracts the document and runs the full pipeline, exiting on error.
func segment(source string, opts blocks.Options) *blocks.Result {
	text, err := extract.File(source)
	if err != nil {
		fatal("extract %s: %v", source, err)
	}
	res, err := blocks.Split(text, opts)
	if err != nil {
		fatal("%v", err)
	}
	return res
}

// splitOptions builds segmentation options from config with flag overrides.
func splitOptions(cfg config.Config, args []string) blocks.Options {
	opts := blocks.Options{
		MaxChunkLength: maxLength(cfg, args),
		Marker:         cfg.Marker,
	}
	if v := flagValue(args, "--marker"); v != "" {
		opts.Marker = v
	}
	return opts
}

func maxLength(cfg config.Config, args []string) int {
	return intFlag(args, "--max", cfg.MaxChunkLength)
}

// recordRun logs run metadata to history. Failures warn and never abort the run.
func recordRun(cfg config.Config, source string, res *blocks.Result, maxLen int) {
	if !cfg.History.Enabled {
		return
	}
	db, err := history.Open(cfg.History.DBPath)
	if err != nil {
		log.Printf("warning: open history: %v", err)
		return
	}
	defer db.Close()

	err = db.Record(history.Entry{
		Source:          source,
		BlockCount:      res.BlockCount,
		TotalCharacters: res.TotalCharacters,
		MarkerFound:     res.MarkerFound(),
		MaxChunkLength:  maxLen,
	})
	if err != nil {
		log.Printf("warning: record history: %v", err)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, help.FormatUsage(help.TopLevel, help.Subcommands))
}

func flagValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

func intFlag(args []string, flag string, def int) int {
	v := flagValue(args, flag)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fatal("%s: invalid number %q", flag, v)
	}
	return n
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "pb: "+format+"\n", args...)
	os.Exit(1)
}
