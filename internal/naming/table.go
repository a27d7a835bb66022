package naming

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// rgbColorNames is the bundled reference table, rows of (R, G, B, name)
// with a header line. It is a snapshot of the table the index builder
// consumes; replacing it requires re-running the builder.
//
//go:embed rgb_color_names.csv
var rgbColorNames []byte

// Entry is one row of the reference colour table. Row order is
// significant: nearest-neighbour ties resolve to the earliest row.
type Entry struct {
	R, G, B uint8
	Name    string
}

// ParseTable reads a reference colour table from CSV rows of
// (R, G, B, name). A header line is detected and skipped.
func ParseTable(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 4

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read colour table: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("colour table is empty")
	}

	// Skip a header row such as "red,green,blue,name".
	if _, err := strconv.Atoi(strings.TrimSpace(records[0][0])); err != nil {
		records = records[1:]
	}

	entries := make([]Entry, 0, len(records))
	for i, record := range records {
		channels := [3]uint8{}
		for j := 0; j < 3; j++ {
			v, err := strconv.Atoi(strings.TrimSpace(record[j]))
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid channel value %q", i+1, record[j])
			}
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("row %d: channel value %d out of range", i+1, v)
			}
			channels[j] = uint8(v)
		}
		name := strings.TrimSpace(record[3])
		if name == "" {
			return nil, fmt.Errorf("row %d: empty colour name", i+1)
		}
		entries = append(entries, Entry{R: channels[0], G: channels[1], B: channels[2], Name: name})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("colour table has no data rows")
	}
	return entries, nil
}

// LoadTable reads a reference colour table from a CSV file.
func LoadTable(path string) ([]Entry, error) {
	file, err := os.Open(path) // #nosec G304 - Caller-specified table path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open colour table: %w", err)
	}
	defer file.Close()
	return ParseTable(file)
}

// BuiltinTable returns the bundled reference colour table.
func BuiltinTable() ([]Entry, error) {
	return ParseTable(strings.NewReader(string(rgbColorNames)))
}
