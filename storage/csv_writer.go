package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"realtyhub/models"
	"realtyhub/money"
)

var csvHeader = []string{
	"id", "title", "location", "type", "price", "price_display",
	"bedrooms", "bathrooms", "area_sqft", "year_built", "featured", "amenities",
}

// CSVWriter exports result sets to a CSV file.
// It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// Write appends one row per listing, in the given order.
func (c *CSVWriter) Write(listings []models.Listing) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, l := range listings {
		row := []string{
			l.ID,
			l.Title,
			l.Location,
			string(l.Type),
			strconv.FormatInt(l.Price, 10),
			money.Format(l.Price),
			strconv.Itoa(l.Bedrooms),
			strconv.Itoa(l.Bathrooms),
			strconv.FormatFloat(l.Area, 'f', -1, 64),
			strconv.Itoa(l.YearBuilt),
			strconv.FormatBool(l.Featured),
			strings.Join(l.Amenities, "; "),
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
