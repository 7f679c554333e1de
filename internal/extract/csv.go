package extract

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"
)

// maxTabularRows caps how much of a tabular file lands in the context; a
// preview is enough for grounding.
const maxTabularRows = 20

func readCSV(_ context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var rows []string
	for len(rows) < maxTabularRows {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		rows = append(rows, strings.Join(record, ", "))
	}
	return strings.Join(rows, "\n"), nil
}
