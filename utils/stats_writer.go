package utils

import (
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// GenerationRecord is one row of the per-generation stats CSV
type GenerationRecord struct {
	Generation int     `csv:"generation"`
	Living     int     `csv:"living"`
	Density    float64 `csv:"density"`
	Status     string  `csv:"status"`
}

// StatsWriter appends generation records as CSV
type StatsWriter struct {
	w             io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewStatsWriter writes CSV records to w
func NewStatsWriter(w io.Writer) *StatsWriter {
	return &StatsWriter{w: w}
}

// CreateStatsFile creates (or truncates) filename and returns a writer for it.
// An empty filename disables output and returns a nil writer.
func CreateStatsFile(filename string) (*StatsWriter, error) {
	if filename == "" {
		return nil, nil
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[CreateStatsFile] failed to create file: %+v", filename)
	}
	return &StatsWriter{w: f, closer: f}, nil
}

// Write appends a record, emitting the header on the first call
func (sw *StatsWriter) Write(rec GenerationRecord) error {
	if sw == nil {
		return nil
	}

	records := []GenerationRecord{rec}
	if !sw.headerWritten {
		if err := gocsv.Marshal(records, sw.w); err != nil {
			return errors.Wrap(err, "[StatsWriter.Write] failed to write record")
		}
		sw.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, sw.w); err != nil {
		return errors.Wrap(err, "[StatsWriter.Write] failed to write record")
	}
	return nil
}

// Close closes the underlying file, if any
func (sw *StatsWriter) Close() error {
	if sw == nil || sw.closer == nil {
		return nil
	}
	return sw.closer.Close()
}
