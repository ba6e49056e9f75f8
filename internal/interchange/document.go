package interchange

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/expense-manager/backend/internal/models"
)

// EncodeJSON writes the expenses as a JSON array of flat maps.
func EncodeJSON(w io.Writer, expenses []models.Expense) error {
	document := make([]FlatMap, 0, len(expenses))
	for _, expense := range expenses {
		document = append(document, ToFlatMap(expense))
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(document)
}

// A RecordError describes why a single record of a document could not
// be decoded.
type RecordError struct {
	Record int // 1-based position of the record in the document
	Err    error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Record, e.Err)
}

func (e RecordError) Unwrap() error {
	return e.Err
}

// DecodeJSON parses a JSON array of flat maps into expenses, in
// document order. Records that cannot be decoded are reported
// individually, only a malformed document is an error.
func DecodeJSON(r io.Reader, now func() time.Time) ([]models.Expense, []RecordError, error) {
	decoder := json.NewDecoder(r)
	// Numbers stay json.Number so that amounts are not squeezed
	// through a float64
	decoder.UseNumber()

	var document []FlatMap
	if err := decoder.Decode(&document); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrDeserialization, err)
	}

	expenses := make([]models.Expense, 0, len(document))
	var skipped []RecordError
	for i, data := range document {
		expense, err := FromFlatMap(data, now)
		if err != nil {
			skipped = append(skipped, RecordError{Record: i + 1, Err: err})
			continue
		}

		expenses = append(expenses, expense)
	}

	return expenses, skipped, nil
}

// EncodeCSV writes the expenses as a CSV document with one row per
// record and the field names as header.
func EncodeCSV(w io.Writer, expenses []models.Expense) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Fields); err != nil {
		return err
	}

	for _, expense := range expenses {
		data := ToFlatMap(expense)

		row := make([]string, 0, len(Fields))
		for _, field := range Fields {
			row = append(row, fmt.Sprint(data[field]))
		}

		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// DecodeCSV parses a CSV document with a header row into expenses, in
// document order. Empty cells are treated as absent fields. Records
// that cannot be decoded are reported individually, only a malformed
// document is an error.
func DecodeCSV(r io.Reader, now func() time.Time) ([]models.Expense, []RecordError, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrDeserialization, err)
	}

	var expenses []models.Expense
	var skipped []RecordError
	for record := 1; ; record++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", ErrDeserialization, err)
		}

		data := make(FlatMap, len(header))
		for i, field := range header {
			if i < len(row) && row[i] != "" {
				data[field] = row[i]
			}
		}

		expense, err := FromFlatMap(data, now)
		if err != nil {
			skipped = append(skipped, RecordError{Record: record, Err: err})
			continue
		}

		expenses = append(expenses, expense)
	}

	return expenses, skipped, nil
}
