package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/sourcelens-org/sourcelens/dataset"
	"github.com/sourcelens-org/sourcelens/server"
)

func main() {
	filePath := flag.String("file", "", "Path to supplier data file, CSV or XLSX (required)")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	rate := flag.Float64("rate", dataset.DefaultExchangeRate, "Source-to-target currency conversion rate")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *filePath == "" {
		log.Error("--file is required")
		os.Exit(1)
	}

	table, err := dataset.Load(*filePath, dataset.WithExchangeRate(*rate))
	if err != nil {
		log.Error("load dataset failed", "file", *filePath, "error", err)
		os.Exit(1)
	}
	log.Info("dataset loaded", "file", *filePath, "rows", table.Len())

	srv := server.New(table, log)
	if err := srv.Listen(*addr); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
