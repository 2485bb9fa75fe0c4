// Command gaitsync pairs a gait video with its two per-foot sensor CSV
// streams: align the clocks, annotate steps, export labeled segments.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gaitsync/internal/app"
	"gaitsync/internal/config"
	"gaitsync/internal/db"
	"gaitsync/internal/recording"
	"gaitsync/internal/session"
	"gaitsync/internal/timeseries"
	"gaitsync/internal/video"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gaitsync:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", config.DefaultPath(), "path to the YAML config file")
	dataDir := flag.String("data-dir", "", "override the session/data directory")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: gaitsync [flags] [recording-folder]\n\n"+
				"Opens the recording folder (one video plus two per-foot CSVs).\n"+
				"Without an argument the most recently opened folder is reused.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("gaitsync: ")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("warning: %v (using defaults)", err)
	}

	dir := cfg.DataDir
	if *dataDir != "" {
		dir = *dataDir
	}
	if dir == "" {
		dir = session.DefaultDir()
	}
	store, err := session.NewStore(dir)
	if err != nil {
		return err
	}

	folder := flag.Arg(0)
	if folder == "" {
		folder = store.LastFolder()
	}
	if folder == "" {
		return fmt.Errorf("no recording folder given and no previous session to reopen")
	}

	rec, err := recording.Discover(folder)
	if err != nil {
		return err
	}

	doc := store.Load(folder)
	rec.Restore(doc.RightCSV, doc.LeftCSV)

	right, err := timeseries.Load(rec.RightCSV)
	if err != nil {
		return fmt.Errorf("load right foot CSV: %w", err)
	}
	left, err := timeseries.Load(rec.LeftCSV)
	if err != nil {
		return fmt.Errorf("load left foot CSV: %w", err)
	}

	info, err := video.Probe(cfg.FFprobePath, rec.VideoPath)
	if err != nil {
		return err
	}

	history, err := db.Open(db.DefaultDBPath(dir))
	if err != nil {
		log.Printf("warning: export history unavailable: %v", err)
		history = nil
	}

	if err := store.SetLastFolder(folder); err != nil {
		log.Printf("warning: %v", err)
	}

	m := app.New(cfg, store, history, rec, info, right, left, doc)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}
