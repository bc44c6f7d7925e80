// file: internals/features/users/examiners/service/csv_service.go
package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Expected header: full_name,email,password
var expectedHeader = []string{"full_name", "email", "password"}

type ExaminerCSVRow struct {
	Line     int    `json:"line"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

var ErrBadHeader = errors.New("csv header must be: full_name,email,password")

// ParseExaminerCSV reads the upload and splits it into valid rows and per-row
// errors. A malformed header fails the whole file; everything after that is
// row-local so one bad line never sinks the import.
func ParseExaminerCSV(r io.Reader) ([]ExaminerCSVRow, []RowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, ErrBadHeader
	}
	if !headerMatches(header) {
		return nil, nil, ErrBadHeader
	}

	var (
		rows    []ExaminerCSVRow
		rowErrs []RowError
		line    = 1 // header consumed
	)
	for {
		record, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Message: "malformed csv line"})
			continue
		}
		if len(record) < 3 {
			rowErrs = append(rowErrs, RowError{Line: line, Message: "expected 3 columns"})
			continue
		}

		row := ExaminerCSVRow{
			Line:     line,
			FullName: strings.TrimSpace(record[0]),
			Email:    strings.ToLower(strings.TrimSpace(record[1])),
			Password: record[2],
		}
		if msg := validateRow(row); msg != "" {
			rowErrs = append(rowErrs, RowError{Line: line, Message: msg})
			continue
		}
		rows = append(rows, row)
	}
	return rows, rowErrs, nil
}

func validateRow(row ExaminerCSVRow) string {
	if row.FullName == "" {
		return "full_name is required"
	}
	if row.Email == "" || !strings.Contains(row.Email, "@") {
		return fmt.Sprintf("invalid email %q", row.Email)
	}
	if len(row.Password) < 8 {
		return "password must be at least 8 characters"
	}
	return ""
}

func headerMatches(header []string) bool {
	if len(header) < len(expectedHeader) {
		return false
	}
	for i, want := range expectedHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return false
		}
	}
	return true
}

// WriteExaminerCSV renders the export: same column order the import expects,
// password column left blank.
func WriteExaminerCSV(w io.Writer, rows []ExaminerCSVRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(expectedHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.FullName, r.Email, ""}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
