package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"newsviewer/config"
	"newsviewer/format"
	"newsviewer/logging"
	"newsviewer/tui"
	"newsviewer/viewer"
)

func main() {
	cfg := config.Load()

	// Parse command-line flags
	articlesURL := flag.String("url", cfg.ArticlesURL, "Articles endpoint URL")
	fragment := flag.String("fragment", "", "Initial fragment, e.g. article-3")
	flag.Parse()

	// stdout belongs to the terminal UI
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "logs/viewer.log"
	}
	logger := logging.Must(logging.Config{Level: cfg.LogLevel, File: logFile, Development: cfg.LogDevelopment})
	defer func() { _ = logger.Sync() }()

	formatter, err := format.NewFormatter(cfg.Locale, cfg.Timezone)
	if err != nil {
		fmt.Printf("Error loading locale settings: %v\n", err)
		os.Exit(1)
	}

	src := viewer.NewHTTPSource(*articlesURL, cfg.HTTPTimeout)
	base, err := url.Parse(src.URL())
	if err != nil {
		fmt.Printf("Invalid articles URL %q: %v\n", src.URL(), err)
		os.Exit(1)
	}

	m, err := tui.NewModel(tui.Options{
		Source:      src,
		Formatter:   formatter,
		Fragment:    *fragment,
		Placeholder: cfg.PlaceholderImage,
		BaseURL:     base,
		Probe:       viewer.NewHTTPImageProbe(config.ImageProbeTimeout),
		Logger:      logger,
	})
	if err != nil {
		fmt.Printf("Error creating viewer: %v\n", err)
		os.Exit(1)
	}

	program := tea.NewProgram(m, tea.WithAltScreen())

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
