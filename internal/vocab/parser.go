package vocab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

// Delimiter separates fields in a vocabulary file.
const Delimiter = ';'

// field identifies one of the four semantic columns.
type field int

const (
	fieldSourceWord field = iota
	fieldTargetWord
	fieldSourceSentence
	fieldTargetSentence
	fieldCount
)

var fieldNames = [fieldCount]string{
	"source_word",
	"target_word",
	"source_sentence",
	"target_sentence",
}

// headerAliases maps normalized header names to semantic columns. The
// german/english/satz/sentence names come from the existing vocab.csv files,
// where the fill-in-the-blank sentence is the English one: "sentence" holds
// the target word and is the sentence that gets blanked.
var headerAliases = map[string]field{
	"source_word":     fieldSourceWord,
	"sourceword":      fieldSourceWord,
	"german":          fieldSourceWord,
	"target_word":     fieldTargetWord,
	"targetword":      fieldTargetWord,
	"english":         fieldTargetWord,
	"source_sentence": fieldSourceSentence,
	"sourcesentence":  fieldSourceSentence,
	"sentence":        fieldSourceSentence,
	"target_sentence": fieldTargetSentence,
	"targetsentence":  fieldTargetSentence,
	"satz":            fieldTargetSentence,
}

// ParseReport summarizes a parse for diagnostics.
type ParseReport struct {
	// RowsRead counts non-blank data rows, excluding the header.
	RowsRead int `json:"rows_read"`
	// Accepted counts rows that became entries.
	Accepted int `json:"accepted"`
	// DroppedLines lists the 1-based source lines of rejected rows.
	DroppedLines []int `json:"dropped_lines,omitempty"`
}

// Dropped returns the number of rejected rows.
func (r *ParseReport) Dropped() int {
	return len(r.DroppedLines)
}

// ParseString is Parse over an in-memory string.
func ParseString(raw string) ([]domain.VocabularyEntry, *ParseReport, error) {
	return Parse(strings.NewReader(raw))
}

// Parse reads a header row followed by one entry per line.
//
// Blank lines are skipped and malformed rows are dropped. A missing header
// column, or a list with zero usable rows, returns a *domain.LoadError of
// kind Empty. A read failure of the underlying reader returns a
// *domain.LoadError of kind Unreachable.
func Parse(r io.Reader) ([]domain.VocabularyEntry, *ParseReport, error) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	report := &ParseReport{}

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, report, domain.NewEmptyError(errors.New("vocabulary has no header row"))
	}
	if err != nil {
		return nil, report, readError(err)
	}

	columns, err := resolveHeader(header)
	if err != nil {
		return nil, report, domain.NewEmptyError(err)
	}

	var entries []domain.VocabularyEntry
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, report, readError(err)
			}
			report.RowsRead++
			report.DroppedLines = append(report.DroppedLines, parseErr.StartLine)
			continue
		}

		if isBlankRecord(record) {
			continue
		}
		report.RowsRead++
		line, _ := reader.FieldPos(0)

		entry, err := entryFromRecord(record, columns)
		if err != nil {
			report.DroppedLines = append(report.DroppedLines, line)
			continue
		}
		entry.Line = line
		entries = append(entries, *entry)
	}

	report.Accepted = len(entries)
	if len(entries) == 0 {
		return nil, report, domain.NewEmptyError(
			fmt.Errorf("%d rows read, none usable", report.RowsRead))
	}

	return entries, report, nil
}

// resolveHeader returns the record index of each semantic column.
func resolveHeader(header []string) ([fieldCount]int, error) {
	var columns [fieldCount]int
	for i := range columns {
		columns[i] = -1
	}

	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		f, ok := headerAliases[normalizeHeader(name)]
		if ok && columns[f] < 0 {
			columns[f] = i
		}
	}

	var missing []string
	for f, idx := range columns {
		if idx < 0 {
			missing = append(missing, fieldNames[f])
		}
	}
	if len(missing) > 0 {
		return columns, fmt.Errorf("%w: %s", domain.ErrMissingColumns, strings.Join(missing, ", "))
	}

	return columns, nil
}

func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(name)
}

func entryFromRecord(record []string, columns [fieldCount]int) (*domain.VocabularyEntry, error) {
	var values [fieldCount]string
	for f, idx := range columns {
		if idx >= len(record) {
			return nil, fmt.Errorf("%w: missing %s", domain.ErrMalformedRow, fieldNames[f])
		}
		values[f] = record[idx]
	}

	return domain.NewVocabularyEntry(
		values[fieldSourceWord],
		values[fieldTargetWord],
		values[fieldSourceSentence],
		values[fieldTargetSentence],
	)
}

// isBlankRecord catches whitespace-only lines, which the csv reader returns
// as a single field.
func isBlankRecord(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func readError(err error) error {
	return domain.NewUnreachableError(fmt.Errorf("read vocabulary: %w", err))
}
