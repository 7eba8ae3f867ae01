package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"moviestore/errs"
	"moviestore/movie"
	"moviestore/pkg/sentry"
)

var requiredColumns = []string{"id", "title", "director", "release_year", "rating"}

type importStats struct {
	Imported int
	Skipped  int
}

// importMovies adds every row of r through svc. Rows that fail to parse or
// are rejected by the store are logged and skipped; any other error stops
// the import.
func importMovies(ctx context.Context, svc movie.Service, r io.Reader, limit int) (importStats, error) {
	var stats importStats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	idx, err := parseMovieCSVHeader(reader)
	if err != nil {
		return stats, err
	}

	line := 1
	for limit <= 0 || stats.Imported < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, err
		}
		line++

		m, err := parseMovieRecord(record, idx)
		if err != nil {
			slog.Warn("skipping malformed row", "line", line, "error", err)
			sentry.WithExtras(map[string]interface{}{"line": line}).
				Warningf("skipping malformed row: %v", err)
			stats.Skipped++
			continue
		}

		if _, err := svc.AddMovie(ctx, m); err != nil {
			switch errs.ErrorCode(err) {
			case errs.EINVALID, errs.ECONFLICT:
				slog.Warn("skipping rejected row", "line", line, "id", m.ID, "reason", errs.ErrorMessage(err))
				sentry.WithExtras(map[string]interface{}{"line": line, "id": m.ID}).
					Warningf("skipping rejected row: %s", errs.ErrorMessage(err))
				stats.Skipped++
				continue
			}
			sentry.Error(err)
			return stats, fmt.Errorf("line %d: %w", line, err)
		}

		stats.Imported++
	}

	return stats, nil
}

func parseMovieCSVHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing required column %q in csv header", col)
		}
	}

	return idx, nil
}

func parseMovieRecord(record []string, idx map[string]int) (movie.Movie, error) {
	field := func(col string) (string, error) {
		i := idx[col]
		if i >= len(record) {
			return "", fmt.Errorf("missing %s", col)
		}
		return strings.TrimSpace(record[i]), nil
	}

	values := make(map[string]string, len(requiredColumns))
	for _, col := range requiredColumns {
		v, err := field(col)
		if err != nil {
			return movie.Movie{}, err
		}
		values[col] = v
	}

	id, err := strconv.ParseInt(values["id"], 10, 64)
	if err != nil {
		return movie.Movie{}, fmt.Errorf("invalid id %q", values["id"])
	}
	year, err := strconv.Atoi(values["release_year"])
	if err != nil {
		return movie.Movie{}, fmt.Errorf("invalid release_year %q", values["release_year"])
	}
	rating, err := strconv.ParseFloat(values["rating"], 64)
	if err != nil {
		return movie.Movie{}, fmt.Errorf("invalid rating %q", values["rating"])
	}

	return movie.Movie{
		ID:          id,
		Title:       values["title"],
		Director:    values["director"],
		ReleaseYear: year,
		Rating:      rating,
	}, nil
}
