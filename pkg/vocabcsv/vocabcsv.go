// Package vocabcsv loads vocabulary entries from CSV input.
//
// The format owns exactly two columns: a required "word" column and an
// optional "type" column, both matched case-insensitively in the header.
// Structural problems (missing word column, empty word, unknown type value)
// abort the load before anything downstream runs; malformed rows are never
// silently skipped.
package vocabcsv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mhofer/wortkarten/models"
)

// ErrMissingWordColumn indicates the header has no word column.
var ErrMissingWordColumn = errors.New("csv missing 'word' column")

// LoadFile reads a CSV file into vocabulary entries.
func LoadFile(path string) ([]models.VocabularyEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}
	return Parse(data)
}

// Parse decodes CSV bytes into vocabulary entries. Row errors are collected
// and reported together so a bad file surfaces every problem at once.
func Parse(data []byte) ([]models.VocabularyEntry, error) {
	data = stripBOM(data)
	r := csv.NewReader(bufio.NewReader(bytes.NewReader(data)))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	wordIdx, ok := idx["word"]
	if !ok {
		return nil, ErrMissingWordColumn
	}
	typeIdx := -1
	if i, ok := idx["type"]; ok {
		typeIdx = i
	}

	var entries []models.VocabularyEntry
	var rowErrs []string
	row := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("row %d: %v", row, err))
			continue
		}

		word := strings.TrimSpace(rec[wordIdx])
		if word == "" {
			rowErrs = append(rowErrs, fmt.Sprintf("row %d: empty word", row))
			continue
		}

		vocType := models.TypeUnset
		if typeIdx >= 0 && typeIdx < len(rec) {
			vocType, err = models.ParseType(rec[typeIdx])
			if err != nil {
				rowErrs = append(rowErrs, fmt.Sprintf("row %d: %v", row, err))
				continue
			}
		}

		entries = append(entries, models.VocabularyEntry{
			Word: word,
			Type: vocType,
			Row:  row,
		})
	}

	if len(rowErrs) > 0 {
		return nil, fmt.Errorf("invalid vocabulary rows:\n  %s", strings.Join(rowErrs, "\n  "))
	}
	return entries, nil
}

func stripBOM(b []byte) []byte {
	bom := []byte{0xEF, 0xBB, 0xBF}
	if len(b) >= 3 && bytes.Equal(b[:3], bom) {
		return b[3:]
	}
	return b
}
