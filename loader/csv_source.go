package loader

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// readCSV reads a CSV file with header into a table. Every column is read as text.
// A file with only the header is a table without rows.
func readCSV(ctx context.Context, path string) (*table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}

	header, err := readHeaderOnly(content)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	if header != nil {
		return newTable(header), nil
	}

	df := dataframe.ReadCSV(
		bytes.NewReader(content),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, df.Err)
	}

	data := newTable(df.Names())
	data.rows = df.Nrow()
	for _, name := range data.names {
		data.columns[name] = df.Col(name).Records()
	}

	return data, nil
}

// readHeaderOnly returns the header of content when it has no data rows, nil otherwise.
// gota refuses to build a frame without rows.
func readHeaderOnly(content []byte) ([]string, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header")
	}
	if err != nil {
		return nil, err
	}

	_, err = reader.Read()
	if errors.Is(err, io.EOF) {
		return header, nil
	}
	return nil, nil
}
