package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/seguro-calcio/roster-service/internal/domain/players"
)

// Recognized header tokens, case-insensitive and order-independent.
const (
	headerFirstName = "nome"
	headerLastName  = "cognome"
	headerRole      = "ruolo"
	headerBirthYear = "anno di nascita"
)

// ErrBadHeader is returned when the CSV header does not carry the four
// required columns.
var ErrBadHeader = errors.New("csv header must contain nome, cognome, ruolo, anno di nascita")

// ImportResult summarizes one CSV import.
type ImportResult struct {
	Imported   int `json:"imported"`
	Skipped    int `json:"skipped"`
	Duplicates int `json:"duplicates"`
}

// ImportCSV reads a whole player CSV and inserts the valid rows. Rows with
// missing columns, unknown roles, or unrecognized birth years are counted as
// skipped; rows matching an existing player by full name and birth year are
// counted as duplicates. A bad header aborts the import with no state change.
func (s *Service) ImportCSV(r io.Reader) (ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return ImportResult{}, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return ImportResult{}, ErrBadHeader
	}

	columns, err := resolveHeader(records[0])
	if err != nil {
		return ImportResult{}, err
	}

	var result ImportResult
	for _, record := range records[1:] {
		firstName := cell(record, columns[headerFirstName])
		lastName := cell(record, columns[headerLastName])
		roleValue := cell(record, columns[headerRole])
		birthYear := cell(record, columns[headerBirthYear])

		if firstName == "" || lastName == "" || roleValue == "" || birthYear == "" {
			result.Skipped++
			continue
		}
		role, ok := players.ParseRole(roleValue)
		if !ok {
			result.Skipped++
			continue
		}
		if !s.rules.Recognized(birthYear) {
			result.Skipped++
			continue
		}

		fullName := strings.TrimSpace(firstName + " " + lastName)
		if s.hasPlayer(fullName, birthYear) {
			result.Duplicates++
			continue
		}

		s.store.UpsertPlayer(players.Player{
			ID:        s.newID(),
			Name:      fullName,
			Role:      role,
			BirthYear: birthYear,
		})
		result.Imported++
	}

	return result, nil
}

func resolveHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, 4)
	for i, name := range header {
		switch strings.ToLower(stripQuotes(strings.TrimSpace(name))) {
		case headerFirstName:
			columns[headerFirstName] = i
		case headerLastName:
			columns[headerLastName] = i
		case headerRole:
			columns[headerRole] = i
		case headerBirthYear:
			columns[headerBirthYear] = i
		}
	}
	if len(columns) != 4 {
		return nil, ErrBadHeader
	}
	return columns, nil
}

func cell(record []string, index int) string {
	if index < 0 || index >= len(record) {
		return ""
	}
	return stripQuotes(strings.TrimSpace(record[index]))
}

func stripQuotes(value string) string {
	return strings.ReplaceAll(value, `"`, "")
}

func (s *Service) hasPlayer(fullName, birthYear string) bool {
	for _, p := range s.store.ListPlayers() {
		if strings.EqualFold(p.Name, fullName) && p.BirthYear == birthYear {
			return true
		}
	}
	return false
}
