// Package main implements the meetz CLI: a world-clock dashboard and
// multi-timezone meeting window finder for the terminal.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/codeGROOVE-dev/meetTZ/pkg/cache"
	"github.com/codeGROOVE-dev/meetTZ/pkg/cities"
	"github.com/codeGROOVE-dev/meetTZ/pkg/civil"
	"github.com/codeGROOVE-dev/meetTZ/pkg/clock"
	"github.com/codeGROOVE-dev/meetTZ/pkg/config"
	"github.com/codeGROOVE-dev/meetTZ/pkg/format"
	"github.com/codeGROOVE-dev/meetTZ/pkg/ics"
	"github.com/codeGROOVE-dev/meetTZ/pkg/overlap"
	"github.com/codeGROOVE-dev/meetTZ/pkg/timeline"
)

var (
	configPath  = flag.String("config", "", "Config file path (default ~/.config/meetz/config.yaml)")
	sourceTZ    = flag.String("tz", "", "Source timezone or city name (default from config)")
	day         = flag.String("day", "today", "Day to search: today, tomorrow, or YYYY-MM-DD")
	duration    = flag.Int("duration", 0, "Meeting duration in minutes (default from config)")
	step        = flag.Int("step", 0, "Slide between candidate starts in minutes (default from config)")
	top         = flag.Int("top", 0, "Number of suggestions to show (default from config)")
	cityList    = flag.String("cities", "", "Comma-separated city ids or names (default pinned cities)")
	showClocks  = flag.Bool("clocks", false, "Show current time for tracked cities and exit")
	convertTime = flag.String("convert", "", "Convert a HH:MM wall clock from -tz to the tracked cities")
	icsPath     = flag.String("ics", "", "Write the top suggestion as an iCalendar file")
	noCache     = flag.Bool("no-cache", false, "Disable the suggestion cache")
	noColor     = flag.Bool("no-color", false, "Disable colored output")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	version     = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println("meetz CLI v1.0.0")
		return
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *noColor {
		color.NoColor = true
	}

	path := *configPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			logger.Error("Cannot resolve home directory", "error", err)
			os.Exit(1)
		}
		path = filepath.Join(home, ".config", "meetz", "config.yaml")
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.Error("Failed to load config", "path", path, "error", err)
		os.Exit(1)
	}

	tz := cfg.HomeTimezone
	if *sourceTZ != "" {
		tz = cities.NormalizeTZ(*sourceTZ)
	}
	srcLoc, err := civil.LoadZone(tz)
	if err != nil {
		logger.Error("Invalid source timezone", "tz", tz, "error", err)
		os.Exit(1)
	}

	selected, err := selectCities(cfg)
	if err != nil {
		logger.Error("City selection failed", "error", err)
		os.Exit(1)
	}

	now := time.Now()

	if *showClocks {
		printClocks(selected, now, tz, logger)
		return
	}
	if *convertTime != "" {
		printConversion(selected, now, srcLoc, tz, logger)
		return
	}

	sourceDay, err := resolveDay(*day, now, srcLoc)
	if err != nil {
		logger.Error("Invalid -day value", "day", *day, "error", err)
		os.Exit(1)
	}

	durationMins := cfg.DurationMinutes
	if *duration > 0 {
		durationMins = *duration
	}
	stepMins := cfg.StepMinutes
	if *step > 0 {
		stepMins = *step
	}
	maxResults := cfg.MaxSuggestions
	if *top > 0 {
		maxResults = *top
	}

	opts := []overlap.Option{
		overlap.WithStep(time.Duration(stepMins) * time.Minute),
		overlap.WithMaxResults(maxResults),
	}
	if !*noCache {
		opts = append(opts, overlap.WithCache(cache.New(1000, 15*time.Minute, logger)))
	}
	planner := overlap.NewWithLogger(logger, opts...)

	slots, err := planner.Suggest(overlap.Query{
		Cities:    selected,
		SourceDay: sourceDay,
		SourceTZ:  tz,
		Duration:  time.Duration(durationMins) * time.Minute,
	})
	if err != nil {
		logger.Error("Suggestion failed", "error", err)
		os.Exit(1)
	}

	printSuggestions(slots, selected, sourceDay, srcLoc, durationMins)

	if *icsPath != "" && len(slots) > 0 {
		doc := ics.Export(slots[0], srcLoc, "")
		if err := os.WriteFile(*icsPath, []byte(doc), 0o600); err != nil {
			logger.Error("Failed to write ICS file", "path", *icsPath, "error", err)
			os.Exit(1)
		}
		fmt.Printf("\n📅 Wrote top suggestion to %s\n", *icsPath)
	}
}

// selectCities resolves -cities tokens against the catalog and the config,
// falling back to the config's pinned cities.
func selectCities(cfg *config.Config) ([]overlap.City, error) {
	if *cityList == "" {
		return cfg.SelectedCities(), nil
	}
	var out []overlap.City
	for _, token := range strings.Split(*cityList, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if city, ok := cities.ByID(token); ok {
			out = append(out, city)
			continue
		}
		matches := cities.Search(token)
		if len(matches) == 0 {
			return nil, fmt.Errorf("unknown city %q", token)
		}
		out = append(out, matches[0])
	}
	return out, nil
}

func resolveDay(value string, now time.Time, srcLoc *time.Location) (time.Time, error) {
	switch value {
	case "today":
		return now, nil
	case "tomorrow":
		return civil.StartOfDay(now, srcLoc).AddDate(0, 0, 1), nil
	default:
		return time.ParseInLocation("2006-01-02", value, srcLoc)
	}
}

func printClocks(selected []overlap.City, now time.Time, homeTZ string, logger *slog.Logger) {
	fmt.Println("\n🌍 World Clocks")
	fmt.Println(strings.Repeat("─", 50))
	for _, city := range selected {
		local, err := clock.TimeIn(now, city.Timezone)
		if err != nil {
			logger.Error("Skipping city", "city", city.ID, "error", err)
			continue
		}
		diff, err := clock.Difference(now, homeTZ, city.Timezone)
		if err != nil {
			logger.Error("Skipping city", "city", city.ID, "error", err)
			continue
		}
		fmt.Printf("%-16s %s  %s (%s, %s)\n",
			city.Name,
			local.Format("15:04"),
			local.Format("Mon Jan 2"),
			civil.OffsetLabel(now, local.Location()),
			diff)
	}
}

func printConversion(selected []overlap.City, now time.Time, srcLoc *time.Location, tz string, logger *slog.Logger) {
	targets := make([]string, 0, len(selected))
	for _, city := range selected {
		targets = append(targets, city.Timezone)
	}
	src, converted, err := clock.Convert(now.In(srcLoc), *convertTime, tz, targets)
	if err != nil {
		logger.Error("Conversion failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("\n🔁 %s in %s\n", src.Format("15:04 on Mon, Jan 2"), tz)
	fmt.Println(strings.Repeat("─", 50))
	for i, t := range converted {
		fmt.Printf("%-16s %s\n", selected[i].Name, t.Format("15:04 on Mon, Jan 2"))
	}
}

func printSuggestions(slots []overlap.Slot, selected []overlap.City, sourceDay time.Time, srcLoc *time.Location, durationMins int) {
	fmt.Printf("\n🗓️  Meeting windows • %d min • %d cities\n", durationMins, len(selected))
	fmt.Println(strings.Repeat("─", 50))

	if len(slots) == 0 {
		fmt.Println("No overlapping window found for every city on that day.")
		return
	}

	best := &slots[0]
	if chart, err := timeline.Render(selected, sourceDay, srcLoc, best); err == nil {
		fmt.Println()
		fmt.Print(chart)
	}

	fmt.Println()
	for i, slot := range slots {
		rendered := format.Render(slot, srcLoc)
		fmt.Printf("%d. %s  %s  score %.2f\n", i+1, rendered.Label, qualityBadge(slot.Quality), slot.Score)
		for _, line := range rendered.PerCityLines {
			fmt.Printf("   • %s\n", line)
		}
	}
}

func qualityBadge(b overlap.Band) string {
	switch b {
	case overlap.Comfortable:
		return color.New(color.FgGreen).Sprint("comfortable")
	case overlap.Borderline:
		return color.New(color.FgYellow).Sprint("borderline")
	default:
		return color.New(color.FgRed).Sprint("unfriendly")
	}
}
