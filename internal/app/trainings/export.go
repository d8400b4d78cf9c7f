package trainings

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// ExportMonthlyCSV renders the monthly summary as a CSV document with a
// fixed four-column header. The returned filename embeds the month.
func (s *Service) ExportMonthlyCSV(month string) ([]byte, string, error) {
	summary, err := s.MonthlySummary(month)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write([]string{"Player", "Present", "Absent", "Justified"}); err != nil {
		return nil, "", err
	}
	for _, row := range summary {
		record := []string{
			row.PlayerName,
			strconv.Itoa(row.Present),
			strconv.Itoa(row.Absent),
			strconv.Itoa(row.Justified),
		}
		if err := writer.Write(record); err != nil {
			return nil, "", err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), fmt.Sprintf("presenze-%s.csv", month), nil
}
