package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	textColumn     = "text"
	categoryColumn = "category"
)

var (
	ErrEmptyFile     = errors.New("the file does not contain a header row")
	ErrMissingColumn = errors.New("the header is missing a required column")
)

// WriteCSV writes the examples as CSV with a "text,category" header.
//
// Rows written before an error occurs stay written.
func WriteCSV(w io.Writer, examples []Example) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{textColumn, categoryColumn}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, example := range examples {
		if err := writer.Write([]string{example.Text, example.Category}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile creates or truncates the file at path and writes the examples to it.
func WriteFile(path string, examples []Example) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteCSV(f, examples)
}

// ReadCSV reads examples from CSV data with a header row containing
// the columns "text" and "category". Additional columns are ignored.
func ReadCSV(r io.Reader) ([]Example, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	} else if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	textIndex, categoryIndex := -1, -1
	for i, cell := range header {
		switch strings.TrimPrefix(strings.TrimSpace(cell), "\ufeff") {
		case textColumn:
			textIndex = i
		case categoryColumn:
			categoryIndex = i
		}
	}

	if textIndex < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, textColumn)
	}

	if categoryIndex < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, categoryColumn)
	}

	var examples []Example
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(examples)+1, err)
		}

		if textIndex >= len(row) || categoryIndex >= len(row) {
			return nil, fmt.Errorf("row %d has %d fields, expected at least %d", len(examples)+1, len(row), max(textIndex, categoryIndex)+1)
		}

		examples = append(examples, Example{
			Text:     row[textIndex],
			Category: row[categoryIndex],
		})
	}

	return examples, nil
}

// ReadFile reads examples from the CSV file at path.
//
// If the file does not exist, the returned error wraps fs.ErrNotExist.
func ReadFile(path string) ([]Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}

// Split returns the texts and categories of the examples as parallel slices.
func Split(examples []Example) (texts, categories []string) {
	texts = make([]string, len(examples))
	categories = make([]string, len(examples))

	for i, example := range examples {
		texts[i] = example.Text
		categories[i] = example.Category
	}

	return texts, categories
}
