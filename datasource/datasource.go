package datasource

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/op/go-logging"

	"github.com/wendi-lab/ecommerce-brazil-by-wendi/schema"
)

var log = logging.MustGetLogger("log")

const fetchTimeout = 30 * time.Second

// DataSourceError reports an unreachable or malformed data source. The
// caller recovers by substituting the synthetic sample dataset so the
// pipeline never sees an empty or ill-typed table.
type DataSourceError struct {
	Source string
	Cause  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %s unavailable: %v", e.Source, e.Cause)
}

func (e *DataSourceError) Unwrap() error {
	return e.Cause
}

// Source points at the raw dataset. URL wins over Path when both are set;
// with neither set, loading falls straight through to the sample dataset.
type Source struct {
	URL  string
	Path string
}

// Load reads the raw CSV table from the configured source.
func Load(src Source) (schema.RawTable, error) {
	switch {
	case src.URL != "":
		return fetch(src.URL)
	case src.Path != "":
		return readFile(src.Path)
	default:
		return schema.RawTable{}, &DataSourceError{Source: "(unset)", Cause: fmt.Errorf("no URL or path configured")}
	}
}

// LoadWithFallback loads the configured source and falls back to the
// synthetic sample dataset on any failure. The returned notice is empty
// on a clean load and carries the user-visible explanation otherwise.
func LoadWithFallback(src Source) (schema.RawTable, string) {
	table, err := Load(src)
	if err != nil {
		log.Warningf("Falling back to sample data: %v", err)
		return Sample(), fmt.Sprintf("Could not load dataset (%v), using sample data for demonstration", err)
	}
	log.Infof("Data loaded, %d records", len(table.Rows))
	return table, ""
}

func fetch(url string) (schema.RawTable, error) {
	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return schema.RawTable{}, &DataSourceError{Source: url, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return schema.RawTable{}, &DataSourceError{Source: url, Cause: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	table, err := decode(resp.Body)
	if err != nil {
		return schema.RawTable{}, &DataSourceError{Source: url, Cause: err}
	}
	return table, nil
}

func readFile(path string) (schema.RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return schema.RawTable{}, &DataSourceError{Source: path, Cause: err}
	}
	defer file.Close()

	table, err := decode(file)
	if err != nil {
		return schema.RawTable{}, &DataSourceError{Source: path, Cause: err}
	}
	return table, nil
}

func decode(r io.Reader) (schema.RawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return schema.RawTable{}, fmt.Errorf("could not read header: %w", err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return schema.RawTable{}, fmt.Errorf("could not read row: %w", err)
		}
		rows = append(rows, row)
	}

	return schema.RawTable{Columns: header, Rows: rows}, nil
}
