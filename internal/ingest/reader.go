package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Record is one CSV row keyed by header name.
type Record map[string]string

type RecordResult struct {
	Record Record
	Line   int
	Err    error
}

type CSVReader struct {
	reader io.Reader
}

func NewCSVReader(reader io.Reader) *CSVReader {
	return &CSVReader{
		reader: reader,
	}
}

// ReadParallel streams the rows after the header line. Rows are turned into
// records by workerCount goroutines, so output order is not preserved.
// Only the workers send on the returned channel; read failures travel to them
// as jobs.
func (cr *CSVReader) ReadParallel(ctx context.Context, workerCount int) (<-chan RecordResult, error) {
	csvReader := csv.NewReader(cr.reader)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	type job struct {
		row  []string
		line int
		err  error
	}

	out := make(chan RecordResult)
	jobs := make(chan job, workerCount*2)
	var wg sync.WaitGroup

	wg.Add(workerCount)
	for w := 0; w < workerCount; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					res := RecordResult{Line: j.line, Err: j.err}
					switch {
					case res.Err != nil:
					case len(j.row) != len(headers):
						res.Err = fmt.Errorf("line %d: expected %d fields, got %d", j.line, len(headers), len(j.row))
					default:
						res.Record = make(Record, len(headers))
						for i, h := range headers {
							res.Record[h] = j.row[i]
						}
					}
					select {
					case out <- res:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(jobs)

		for {
			row, err := csvReader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				slog.Error("Error reading CSV row", "error", err)
				var parseErr *csv.ParseError
				isParseErr := errors.As(err, &parseErr)
				j := job{err: err}
				if isParseErr {
					j.line = parseErr.Line
				}
				select {
				case jobs <- j:
				case <-ctx.Done():
					slog.Info("Context cancelled, stopping CSV read...")
					return
				}
				if !isParseErr {
					return
				}
				continue
			}
			line, _ := csvReader.FieldPos(0)
			select {
			case jobs <- job{row: row, line: line}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	return out, nil
}
