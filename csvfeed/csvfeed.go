// Package csvfeed reads the id,url lists produced by whofeed and htmlproc and
// hands the crawl loop its resumable URL slice.
package csvfeed

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Load reads the CSV at path and returns the URLs whose id is at least
// startIndex, preserving file order. Rows whose first field is not an integer
// (a header, say) are skipped.
func Load(path string, startIndex int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvfeed: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvfeed: parse %s: %w", path, err)
	}

	var urls []string
	for _, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			continue
		}
		if id >= startIndex && row[1] != "" {
			urls = append(urls, row[1])
		}
	}
	return urls, nil
}
