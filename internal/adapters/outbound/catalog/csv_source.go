package catalog

import (
	"context"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-filmrecommender/internal/telemetry"
)

//go:embed data/films.csv
var embeddedFS embed.FS

const embeddedCatalog = "data/films.csv"

// listSeparator splits the multi-valued columns.
const listSeparator = "|"

var requiredColumns = []string{
	"id",
	"title",
	"creator",
	"year",
	"description",
	"keywords",
	"moods",
	"genres",
	"category",
}

// CSVSource implements domain.CatalogSource on a CSV file.
type CSVSource struct {
	name string
	open func() (io.ReadCloser, error)
}

// NewEmbeddedCSVSource returns the source of the catalog shipped with the binary.
func NewEmbeddedCSVSource() CSVSource {
	return CSVSource{
		name: "embedded:" + embeddedCatalog,
		open: func() (io.ReadCloser, error) { return embeddedFS.Open(embeddedCatalog) },
	}
}

// NewFileCSVSource returns the source of the catalog stored at path.
func NewFileCSVSource(path string) CSVSource {
	return CSVSource{
		name: path,
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// Name describes where the catalog is read from.
func (s CSVSource) Name() string {
	return s.name
}

// LoadItems reads and validates every row. Any schema violation aborts the load.
func (s CSVSource) LoadItems(ctx context.Context) ([]domain.CatalogItem, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	f, err := s.open()
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("open catalog %s: %w", s.name, err)
	}
	defer f.Close() //nolint:errcheck

	items, err := ParseCSV(f)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("parse catalog %s: %w", s.name, err)
	}
	return items, nil
}

// ParseCSV decodes catalog rows. The header must name every required column;
// extra columns are ignored.
func ParseCSV(r io.Reader) ([]domain.CatalogItem, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, domain.NewIndexBuildErr("", "catalog is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := map[string]int{}
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, domain.NewIndexBuildErr("", fmt.Sprintf("missing column %q", name))
		}
	}

	var (
		items = []domain.CatalogItem{}
		seen  = map[string]struct{}{}
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := reader.FieldPos(0)

		item, err := decodeRow(record, columns, line)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[item.ID]; dup {
			return nil, domain.NewIndexBuildErr(item.ID, fmt.Sprintf("duplicate id on line %d", line))
		}
		seen[item.ID] = struct{}{}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, domain.NewIndexBuildErr("", "catalog has no items")
	}
	return items, nil
}

func decodeRow(record []string, columns map[string]int, line int) (domain.CatalogItem, error) {
	field := func(name string) string {
		return strings.TrimSpace(record[columns[name]])
	}

	item := domain.CatalogItem{
		ID:          field("id"),
		Title:       field("title"),
		Creator:     field("creator"),
		Description: field("description"),
		Keywords:    splitList(field("keywords")),
		Moods:       splitList(field("moods")),
		Genres:      splitList(field("genres")),
		Category:    field("category"),
	}

	switch {
	case item.ID == "":
		return domain.CatalogItem{}, domain.NewIndexBuildErr("", fmt.Sprintf("empty id on line %d", line))
	case item.Title == "":
		return domain.CatalogItem{}, domain.NewIndexBuildErr(item.ID, fmt.Sprintf("empty title on line %d", line))
	case item.Description == "":
		return domain.CatalogItem{}, domain.NewIndexBuildErr(item.ID, fmt.Sprintf("empty description on line %d", line))
	}

	year, err := strconv.Atoi(field("year"))
	if err != nil {
		return domain.CatalogItem{}, domain.NewIndexBuildErr(item.ID, fmt.Sprintf("year %q on line %d is not an integer", field("year"), line))
	}
	item.Year = year

	if item.Category == "" && len(item.Genres) > 0 {
		item.Category = item.Genres[0]
	}
	return item, nil
}

func splitList(s string) []string {
	res := []string{}
	for _, part := range strings.Split(s, listSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}
