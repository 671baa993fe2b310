package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/msdocs"
	"github.com/fwojciec/msdocs/ingest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Entries   msdocs.EntryStore
	Resolver  msdocs.Resolver
	Builder   *ingest.Builder
	BuildInfo msdocs.BuildInfoService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `help:"Database path" env:"MSDOCS_DB" default:"msdocs.db"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Build BuildCmd `cmd:"" help:"Parse cloned documentation repositories into a database"`
	Show  ShowCmd  `cmd:"" help:"Show documentation for an API symbol"`
	List  ListCmd  `cmd:"" help:"List documented API names"`
	Info  InfoCmd  `cmd:"" help:"Show database build metadata"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Dirpath     string   `arg:"" optional:"" default:"." help:"Directory containing the cloned documentation repositories"`
	Docset      []string `short:"d" help:"Docset content root relative to dirpath (repeatable; defaults to the SDK and WDK docsets)"`
	Concurrency int      `short:"c" default:"8" help:"Concurrent parse limit"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Symbol string `arg:"" help:"API symbol to look up (disassembler decorations are stripped)"`
	Cache  bool   `help:"Load the entire database into memory"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Prefix string `short:"p" help:"Only list names with this prefix"`
	Limit  int    `short:"n" help:"Maximum number of names to list"`
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct{}
