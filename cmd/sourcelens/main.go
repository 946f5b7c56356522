package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sourcelens-org/sourcelens/dataset"
	"github.com/sourcelens-org/sourcelens/engine"
	"github.com/sourcelens-org/sourcelens/export"
	"github.com/sourcelens-org/sourcelens/fallback"
)

const version = "0.1.0"

func main() {
	filePath := flag.String("file", "", "Path to supplier data file, CSV or XLSX (required)")
	category := flag.String("category", engine.CategoryAll, "Item category to filter, or All")
	maxPrice := flag.Float64("max-price", 200000, "Maximum negotiated price per unit (target currency)")
	maxLeadTime := flag.Int("max-lead-time", 10, "Maximum delivery lead time in days")
	maxDefectRate := flag.Float64("max-defect-rate", 5.0, "Maximum defect rate percentage")
	compliance := flag.String("compliance", "All", "Compliance preference: All, Yes or No")
	rate := flag.Float64("rate", dataset.DefaultExchangeRate, "Source-to-target currency conversion rate")
	format := flag.String("format", "table", "Output format: table, json, csv")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	sqlitePath := flag.String("sqlite", "", "Also write the result to this SQLite database")
	listCategories := flag.Bool("categories", false, "Print the distinct item categories and exit")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `sourcelens: supplier recommendations over a procurement dataset

Usage:
  sourcelens --file data_supplier.csv --category Electronics --max-price 150000
  sourcelens --file data_supplier.csv --max-defect-rate 3 --format csv --out hasil.csv
  sourcelens --file data_supplier.xlsx --categories

Flags:
`)
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("sourcelens %s\n", version)
		return
	}
	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		flag.Usage()
		os.Exit(1)
	}

	table, err := dataset.Load(*filePath, dataset.WithExchangeRate(*rate))
	if err != nil {
		fatalf("load dataset: %v", err)
	}

	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	if *listCategories {
		for _, c := range table.Categories() {
			fmt.Fprintln(writer, c)
		}
		return
	}

	criteria := engine.Criteria{
		ItemCategory:  *category,
		MaxPrice:      *maxPrice,
		MaxLeadTime:   *maxLeadTime,
		MaxDefectRate: *maxDefectRate,
		Compliance:    engine.CompliancePreference(*compliance),
	}
	if err := criteria.Validate(); err != nil {
		fatalf("invalid criteria: %v", err)
	}

	result := engine.Recommend(table, criteria)
	fellBack := false

	if result.Empty() {
		advice, ok := fallback.Advise(table, criteria)
		if !ok {
			fmt.Fprintln(os.Stderr, "Tidak ada supplier yang memenuhi semua kriteria dan tidak ada alternatif yang cukup mendekati.")
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Tidak ada supplier yang memenuhi semua kriteria; menampilkan alternatif yang hampir memenuhi.")
		result = advice.Result
		fellBack = true
	}

	if *sqlitePath != "" {
		if err := export.WriteSQLite(*sqlitePath, "recommendations", result); err != nil {
			fatalf("write sqlite: %v", err)
		}
	}

	switch *format {
	case "csv":
		if err := export.WriteCSV(writer, result); err != nil {
			fatalf("write csv: %v", err)
		}
	case "json":
		out := cliOutput{
			Criteria: criteria,
			Fallback: fellBack,
			Result:   result,
		}
		enc := json.NewEncoder(writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fatalf("write json: %v", err)
		}
	case "table":
		writeTable(writer, result)
	default:
		fatalf("unknown format %q", *format)
	}
}

type cliOutput struct {
	Criteria engine.Criteria `json:"criteria"`
	Fallback bool            `json:"fallback"`
	Result   *engine.Result  `json:"result"`
}

// writeTable prints the result as an aligned text table, one line per group.
func writeTable(w *os.File, res *engine.Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	headers := export.Headers(res)
	for i, h := range headers {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, h)
	}
	fmt.Fprintln(tw)

	for _, line := range export.TableRows(res) {
		for i, v := range line {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, v)
		}
		fmt.Fprintln(tw)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
