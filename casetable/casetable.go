// Package casetable reads and writes the tabular shape the mismatch engine
// exchanges with its callers: one row per recipient/donor case on the way in,
// one row per case with one column per locus on the way out.
package casetable

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// Case is one recipient/donor comparison.
type Case struct {
	SampleID    string `csv:"sample_id"`
	RecipientGL string `csv:"recipient_gl"`
	DonorGL     string `csv:"donor_gl"`
}

// ReadCases unmarshals a delimited case table with a header row naming the
// sample_id, recipient_gl, and donor_gl columns.
func ReadCases(fileBytes []byte, delimiter rune) ([]*Case, error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delimiter
		r.LazyQuotes = true
		return r
	})

	cases := []*Case{}
	if err := gocsv.UnmarshalBytes(fileBytes, &cases); err != nil {
		return nil, err
	}

	return cases, nil
}

// ReadCasesLayout reads a headerless case table using explicit column
// positions.
func ReadCasesLayout(r io.Reader, layout Layout) ([]*Case, error) {
	cr := csv.NewReader(r)
	cr.Comma = layout.Delimiter
	cr.Comment = layout.Comment
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	need := layout.ColSample
	if layout.ColRecipient > need {
		need = layout.ColRecipient
	}
	if layout.ColDonor > need {
		need = layout.ColDonor
	}

	cases := make([]*Case, 0, len(rows))
	for i, row := range rows {
		if len(row) <= need {
			return nil, fmt.Errorf("row %d has %d columns but the layout needs at least %d", i, len(row), need+1)
		}
		cases = append(cases, &Case{
			SampleID:    row[layout.ColSample],
			RecipientGL: row[layout.ColRecipient],
			DonorGL:     row[layout.ColDonor],
		})
	}

	return cases, nil
}

// Recipients returns the recipient GL strings of the cases, in order.
func Recipients(cases []*Case) []string {
	out := make([]string, 0, len(cases))
	for _, c := range cases {
		out = append(out, c.RecipientGL)
	}

	return out
}

// Donors returns the donor GL strings of the cases, in order.
func Donors(cases []*Case) []string {
	out := make([]string, 0, len(cases))
	for _, c := range cases {
		out = append(out, c.DonorGL)
	}

	return out
}
