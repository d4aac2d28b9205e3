// Command transport-extract находит упоминания транспортных средств в файлах
// (текст, HTML, колонка Excel) и печатает результат в JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"transportner/extraction"
	"transportner/gazetteer"
	"transportner/internal/logging"
	"transportner/internal/source"
	"transportner/internal/store"
)

// Output результат работы команды
type Output struct {
	Source   string                   `json:"source"`
	Results  []extraction.BatchResult `json:"results"`
	Mentions int                      `json:"mentions"`
}

type options struct {
	in        string
	format    string
	encoding  string
	sheet     string
	column    string
	xlsxOut   string
	dbPath    string
	gazetteer string
	workers   int
	maxItems  int
	logLevel  string
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "transport-extract: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("transport-extract", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.in, "in", "-", "входной файл, - для stdin")
	fs.StringVar(&opts.format, "format", "text", "формат входа: text, lines, html, xlsx")
	fs.StringVar(&opts.encoding, "encoding", source.EncodingAuto, "кодировка текста: auto, utf-8, windows-1251, koi8-r, iso-8859-5")
	fs.StringVar(&opts.sheet, "sheet", "", "лист Excel (по умолчанию первый)")
	fs.StringVar(&opts.column, "column", "", "колонка Excel: заголовок или буква")
	fs.StringVar(&opts.xlsxOut, "xlsx-out", "", "сохранить отчет в файл Excel")
	fs.StringVar(&opts.dbPath, "db", "", "сохранить результаты в базу SQLite")
	fs.StringVar(&opts.gazetteer, "gazetteer", "", "дополнительный словарь сущностей (JSON)")
	fs.IntVar(&opts.workers, "workers", extraction.DefaultWorkers, "число параллельно обрабатываемых текстов")
	fs.IntVar(&opts.maxItems, "max-items", 0, "максимум элементов в одном упоминании")
	fs.StringVar(&opts.logLevel, "log-level", "WARN", "уровень логирования")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.format == "xlsx" && (opts.in == "" || opts.in == "-") {
		return opts, errors.New("xlsx input requires -in file")
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logging.Setup(opts.logLevel, stderr)

	texts, err := readTexts(opts, stdin)
	if err != nil {
		return err
	}

	var extra []gazetteer.Entry
	if opts.gazetteer != "" {
		if extra, err = gazetteer.LoadFile(opts.gazetteer); err != nil {
			return err
		}
	}

	extractor, err := extraction.New(extraction.Options{MaxItems: opts.maxItems, Workers: opts.workers}, extra...)
	if err != nil {
		return err
	}

	out := Output{Source: opts.in, Results: []extraction.BatchResult{}}
	var docs []*extraction.Document
	if len(texts) > 0 {
		if out.Results, err = extractor.ExtractBatch(ctx, texts); err != nil {
			return err
		}
	}
	for _, r := range out.Results {
		docs = append(docs, r.Document)
		if r.Document != nil {
			out.Mentions += len(r.Document.Mentions)
		}
	}

	if opts.dbPath != "" {
		if err := saveDocuments(ctx, opts.dbPath, opts.in, docs); err != nil {
			return err
		}
	}
	if opts.xlsxOut != "" {
		if err := source.WriteXLSXReport(opts.xlsxOut, source.ReportRows(docs)); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}

func readTexts(opts options, stdin io.Reader) ([]string, error) {
	if opts.format == "xlsx" {
		return source.ReadXLSXColumn(opts.in, opts.sheet, opts.column)
	}

	var data []byte
	var err error
	if opts.in == "" || opts.in == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(opts.in)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	text, err := source.Decode(data, opts.encoding)
	if err != nil {
		return nil, err
	}

	switch opts.format {
	case "text":
		return []string{text}, nil
	case "html":
		plain, err := source.HTMLText(strings.NewReader(text))
		if err != nil {
			return nil, err
		}
		return []string{plain}, nil
	case "lines":
		var texts []string
		for _, line := range strings.Split(text, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				texts = append(texts, line)
			}
		}
		return texts, nil
	}
	return nil, fmt.Errorf("unknown format: %s", opts.format)
}

func saveDocuments(ctx context.Context, dbPath, sourceName string, docs []*extraction.Document) error {
	db, err := store.NewMentionsDB(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, doc := range docs {
		if doc == nil {
			continue
		}
		if err := db.SaveDocument(ctx, doc, sourceName); err != nil {
			return err
		}
	}
	return nil
}
