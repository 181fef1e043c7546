package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/cetd"
	"github.com/fwojciec/cetd/density"
	"github.com/fwojciec/cetd/readability"
	cetdslog "github.com/fwojciec/cetd/slog"
	"github.com/fwojciec/cetd/trafilatura"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Documents cetd.DocumentService
	Sitemaps  cetd.SitemapService
	Fetcher   cetd.Fetcher
	Converter cetd.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Extract ExtractCmd `cmd:"" help:"Extract main content from a page"`
	Batch   BatchCmd   `cmd:"" help:"Extract every page discovered via sitemaps"`
	Inspect InspectCmd `cmd:"" help:"Show the density table for a page"`
	Docs    DocsCmd    `cmd:"" help:"List stored documents"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored document"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL      string `short:"u" help:"Page URL to extract" xor:"input" required:""`
	File     string `short:"f" help:"Local HTML file to extract" xor:"input" required:""`
	Engine   string `short:"e" default:"cetd" enum:"cetd,readability,trafilatura" help:"Extraction engine"`
	Markdown bool   `short:"m" help:"Convert extracted content to Markdown"`
	Output   string `short:"o" help:"Write result to file instead of stdout"`
	Save     bool   `help:"Save the result to the document store"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	URL         string   `arg:"" help:"Base URL of the site to extract"`
	Filter      []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	Engine      string   `short:"e" default:"cetd" enum:"cetd,readability,trafilatura" help:"Extraction engine"`
	Output      string   `short:"o" default:"docs" help:"Output directory for markdown files"`
	Store       bool     `help:"Save to the document store instead of files"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent fetch limit"`
	RPS         float64  `name:"rps" default:"2" help:"Max requests per second per domain"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	URL  string `short:"u" help:"Page URL to inspect" xor:"input" required:""`
	File string `short:"f" help:"Local HTML file to inspect" xor:"input" required:""`
	Top  int    `short:"n" default:"15" help:"Number of densest nodes to show"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Engine string `short:"e" help:"Only show documents extracted by this engine"`
	Full   bool   `help:"Show full document content"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Document ID"`
}

// newExtractor returns the extraction engine for the given name, wrapped
// in the logging decorator.
func newExtractor(engine string, logger *slog.Logger) cetd.Extractor {
	var inner cetd.Extractor
	switch engine {
	case "readability":
		inner = readability.NewExtractor()
	case "trafilatura":
		inner = trafilatura.NewExtractor()
	default:
		inner = density.NewExtractor()
	}
	return cetdslog.NewLoggingExtractor(inner, engine, logger)
}
