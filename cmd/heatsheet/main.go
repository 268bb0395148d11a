/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mikeb26/swimseed/internal"
	"github.com/mikeb26/swimseed/internal/config"
	"github.com/mikeb26/swimseed/notify"
	"github.com/mikeb26/swimseed/roster"
	"github.com/mikeb26/swimseed/s3store"
	"github.com/mikeb26/swimseed/seed"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":     handleHelp,
	"events":   handleEvents,
	"rank":     handleRank,
	"seed":     handleSeed,
	"prefetch": handlePrefetch,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

// meet bundles what every command needs once flags are parsed.
type meet struct {
	cfg      *config.Config
	catalog  *seed.Catalog
	category seed.Category
	notifier *notify.Notifier
}

func loadMeet(cfgPath string, category string) *meet {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("heatsheet.config: %v", err)
	}
	if category != "" {
		cfg.Category = category
		if err := cfg.Validate(); err != nil {
			log.Fatalf("heatsheet.config: %v", err)
		}
	}
	notifier, err := notify.New(cfg.Notify.DiscordWebhook, internal.AppName)
	if err != nil {
		log.Printf("heatsheet.config: warning notifications disabled: %v", err)
		notifier = nil
	}

	return &meet{
		cfg:      cfg,
		catalog:  seed.DefaultCatalog(),
		category: cfg.ParsedCategory(),
		notifier: notifier,
	}
}

// fatalf logs, notifies the operator channel if configured, and exits.
func (m *meet) fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	m.notifier.Notifyf("%v", msg)
	log.Fatal(msg)
}

func (m *meet) loadRoster(ctx context.Context, location string) []*seed.Athlete {
	reader, err := roster.NewReader(m.catalog, m.cfg.Roster.Labels)
	if err != nil {
		m.fatalf("heatsheet.roster: %v", err)
	}
	client := internal.NewCachedHttpClient(ctx, m.cfg.Cache.Bucket,
		m.cfg.Cache.MaxAge)
	athletes, err := reader.Load(ctx, client, location)
	if err != nil {
		m.fatalf("heatsheet.roster: failed to load %v: %v", location, err)
	}

	return athletes
}

func (m *meet) parseEvent(label string) seed.Event {
	ev, err := roster.ParseEventLabel(label)
	if err != nil {
		log.Fatalf("heatsheet: %v", err)
	}
	if !m.catalog.Has(m.category, ev) {
		log.Fatalf("heatsheet: %v is not contested in category %v", label,
			m.category)
	}
	return ev
}

func handleEvents(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	category := fs.String("category", "", "Category: male, female or mixed")
	cfgPath := fs.String("config", internal.DefaultConfigFile, "Meet config file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	m := loadMeet(*cfgPath, *category)
	reader, err := roster.NewReader(m.catalog, m.cfg.Roster.Labels)
	if err != nil {
		log.Fatalf("heatsheet.events: %v", err)
	}
	columns := eventColumns(reader)

	fmt.Printf("Events for %v:\n", m.category)
	for _, ev := range m.catalog.Events(m.category) {
		if col, ok := columns[ev]; ok {
			fmt.Printf("  - %-6v roster column %d\n", roster.FormatEventLabel(ev),
				col)
		} else {
			fmt.Printf("  - %-6v not in roster\n", roster.FormatEventLabel(ev))
		}
	}
}

// eventColumns maps each event with a roster time column to its 1-indexed
// column number.
func eventColumns(r *roster.Reader) map[seed.Event]int {
	columns := make(map[seed.Event]int)
	for i, ev := range r.Events() {
		columns[ev] = roster.IdentityColumns + i + 1
	}
	return columns
}

func handleRank(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	rosterLoc := fs.String("roster", "", "Roster CSV/HTML path or URL")
	eventLabel := fs.String("event", "", "Event label, e.g. 50Fr")
	category := fs.String("category", "", "Category: male, female or mixed")
	cfgPath := fs.String("config", internal.DefaultConfigFile, "Meet config file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *rosterLoc == "" || *eventLabel == "" {
		fmt.Fprintln(os.Stderr, "Please provide --roster and --event.")
		fs.Usage()
		os.Exit(1)
	}
	m := loadMeet(*cfgPath, *category)
	ev := m.parseEvent(*eventLabel)
	athletes := m.loadRoster(ctx, *rosterLoc)

	ranking, err := seed.NewRanker(m.catalog).Rank(athletes, ev, m.category)
	if err != nil {
		m.fatalf("heatsheet.rank: %v", err)
	}
	fmt.Print(seed.BuildRankingOutput(ev, m.category, ranking))
}

func handleSeed(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	rosterLoc := fs.String("roster", "", "Roster CSV/HTML path or URL")
	eventLabel := fs.String("event", "", "Seed only this event, e.g. 50Fr")
	category := fs.String("category", "", "Category: male, female or mixed")
	gridDir := fs.String("grid", "", "Write per-event sheet cell CSVs to this directory")
	publish := fs.Bool("publish", false, "Upload heat sheets to the publish bucket")
	cfgPath := fs.String("config", internal.DefaultConfigFile, "Meet config file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *rosterLoc == "" {
		fmt.Fprintln(os.Stderr, "Please provide --roster.")
		fs.Usage()
		os.Exit(1)
	}
	m := loadMeet(*cfgPath, *category)

	seeder, err := seed.NewSeeder(m.catalog, m.cfg.SeedOptions())
	if err != nil {
		m.fatalf("heatsheet.seed: %v", err)
	}
	athletes := m.loadRoster(ctx, *rosterLoc)

	var sheets []*seed.EventSheet
	if *eventLabel != "" {
		sheet, err := seeder.SeedEvent(athletes, m.parseEvent(*eventLabel),
			m.category)
		if err != nil {
			m.fatalf("heatsheet.seed: %v", err)
		}
		sheets = append(sheets, sheet)
	} else {
		sheets, err = seeder.SeedAll(ctx, athletes, m.category)
		if err != nil {
			m.fatalf("heatsheet.seed: %v", err)
		}
	}

	if m.cfg.Meet.Name != "" {
		fmt.Println(meetTitle(m.cfg))
	}
	for _, sheet := range sheets {
		fmt.Print(seed.BuildHeatSheetOutput(sheet))
		fmt.Println()
	}

	if *gridDir != "" {
		for _, sheet := range sheets {
			if sheet.Entrants() == 0 {
				continue
			}
			path, err := writeGrid(*gridDir, sheet, seeder.Layout())
			if err != nil {
				m.fatalf("heatsheet.grid: %v", err)
			}
			log.Printf("heatsheet.grid: wrote %v", path)
		}
	}
	if *publish {
		publishSheets(ctx, m, sheets)
	}
}

// handlePrefetch warms the roster cache ahead of the meet so that seeding on
// deck does not depend on the entries site being reachable.
func handlePrefetch(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("prefetch", flag.ExitOnError)
	cfgPath := fs.String("config", internal.DefaultConfigFile, "Meet config file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Please provide one or more roster URLs.")
		fs.Usage()
		os.Exit(1)
	}
	m := loadMeet(*cfgPath, "")
	if m.cfg.Cache.Bucket == "" {
		log.Printf("heatsheet.prefetch: warning cache.bucket is not configured; results will not outlive this process")
	}
	reader, err := roster.NewReader(m.catalog, m.cfg.Roster.Labels)
	if err != nil {
		m.fatalf("heatsheet.prefetch: %v", err)
	}
	client := internal.NewCachedHttpClient(ctx, m.cfg.Cache.Bucket,
		m.cfg.Cache.MaxAge)

	for i, loc := range fs.Args() {
		if i > 0 {
			time.Sleep(2 * time.Second) // avoid pegging the entries site
		}
		athletes, err := reader.Load(ctx, client, loc)
		if err != nil {
			// best effort
			log.Printf("heatsheet.prefetch: %v: %v", loc, err)
			continue
		}
		fmt.Printf("seeded %v (%d athletes)\n", loc, len(athletes))
	}
}

func publishSheets(ctx context.Context, m *meet, sheets []*seed.EventSheet) {
	if m.cfg.Publish.Bucket == "" {
		m.fatalf("heatsheet.publish: publish.bucket is not configured")
	}
	store := s3store.New(ctx, m.cfg.Publish.Bucket, false, true)
	if err := store.Init(); err != nil {
		m.fatalf("heatsheet.publish: %v", err)
	}
	published := 0
	for _, sheet := range sheets {
		if sheet.Entrants() == 0 {
			continue
		}
		uri, err := store.Publish(ctx, sheetObjectName(sheet),
			[]byte(seed.BuildHeatSheetOutput(sheet)), "text/plain; charset=utf-8")
		if err != nil {
			m.fatalf("heatsheet.publish: %v", err)
		}
		log.Printf("heatsheet.publish: uploaded %v", uri)
		published++
	}
	m.notifier.Notifyf("published %d %v heat sheets to %v", published,
		m.category, store.Bucket())
}

func meetTitle(cfg *config.Config) string {
	title := cfg.Meet.Name
	// Validate has already accepted the date
	if d, _ := cfg.MeetDate(); !d.IsZero() {
		title = fmt.Sprintf("%v (%v)", title, d.Format("2006-01-02"))
	}
	return title
}

// sheetObjectName is the publish key of an event's heat sheet.
func sheetObjectName(sheet *seed.EventSheet) string {
	return fmt.Sprintf("heatsheets/%v/%v.txt", sheet.Category, sheet.Event)
}

// writeGrid writes the sheet's cells as row,col,value CSV to
// dir/<category>-<event>.csv and returns the path.
func writeGrid(dir string, sheet *seed.EventSheet, l seed.Layout) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%v-%v.csv", sheet.Category,
		strings.ToLower(sheet.Event.String()))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	w := csv.NewWriter(f)
	_ = w.Write([]string{"row", "col", "value"})
	for _, c := range sheet.Cells(l) {
		_ = w.Write([]string{strconv.Itoa(c.Cell.Row), strconv.Itoa(c.Cell.Col),
			c.Value})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	return path, nil
}

func init() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
}
