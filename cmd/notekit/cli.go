package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/notekit"
	"github.com/fwojciec/notekit/config"
	"github.com/fwojciec/notekit/pipeline"
	"github.com/fwojciec/notekit/provision"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Config      config.Config
	Contents    notekit.ContentService
	Pipeline    *pipeline.Pipeline
	Batch       *pipeline.Batch
	Summarizer  notekit.Summarizer
	Hub         notekit.Hub
	Provisioner *provision.Provisioner

	// NewWriter returns the file exporter used by scrape --out.
	NewWriter func(dir string) notekit.ContentWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Enable debug logging"`

	Scrape    ScrapeCmd    `cmd:"" help:"Scrape pages and count their tokens"`
	Summarize SummarizeCmd `cmd:"" help:"Scrape a page and summarize it with Gemini"`
	List      ListCmd      `cmd:"" help:"List stored pages"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a stored page"`
	Pull      PullCmd      `cmd:"" help:"Download and load a model from the Hugging Face hub"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string `arg:"" name:"url" help:"Page URLs"`
	Kind        string   `short:"k" default:"blog" help:"Content kind"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64  `default:"1" help:"Requests per second per domain"`
	Save        bool     `short:"s" help:"Store scraped pages in the database"`
	Out         string   `short:"o" type:"path" help:"Export page text to this directory"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL   string `arg:"" help:"Page URL"`
	Model string `short:"m" default:"gemini-2.5-flash" help:"Gemini model"`
	Save  bool   `short:"s" help:"Store the summarized page in the database"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Kind  string `short:"k" help:"Only list pages of this kind"`
	Limit int    `short:"n" help:"Maximum number of pages to list"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Page ID"`
}

// PullCmd is the "pull" subcommand.
type PullCmd struct {
	Repo    string `arg:"" help:"Hub repository, e.g. bartowski/Llama-3.2-3B-Instruct-GGUF"`
	File    string `arg:"" help:"Model file in the repository"`
	Dir     string `short:"d" type:"path" help:"Model directory (default: NOTEKIT_MODEL_DIR)"`
	Ctx     int    `name:"ctx" help:"Context length (default: model's trained length)"`
	Verbose bool   `short:"v" help:"Print model metadata"`
}
