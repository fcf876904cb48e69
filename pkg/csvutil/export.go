package csvutil

import (
	"fmt"
	"time"

	"github.com/gocarina/gocsv"
)

// Marshal renders rows (a slice of structs with csv tags) as UTF-8 CSV with a
// header row. Fields containing commas or quotes are double-quoted with inner
// quotes doubled.
func Marshal(rows interface{}) ([]byte, error) {
	data, err := gocsv.MarshalBytes(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal csv: %w", err)
	}
	return data, nil
}

// Filename builds the conventional export name, e.g. orders_2026-08-29.csv.
func Filename(subject string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", subject, now.UTC().Format("2006-01-02"))
}
