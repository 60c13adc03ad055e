package sqldb

import (
	"fmt"
	"time"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp inválido %q: %w", s, err)
	}
	return t, nil
}

// rowScanner lo implementan *sql.Row y *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
