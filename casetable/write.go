package casetable

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/hlatools/glmatch/mismatch"
)

// WriteCounts writes one row per case with one column per requested locus,
// followed by the formatted multi-locus summary. A locus with no computable
// count is written as an empty cell, never as 0; a case that failed outright
// gets empty count cells and its error text in the last column.
func WriteCounts(w io.Writer, delimiter rune, loci []string, cases []*Case, results []mismatch.CaseResult) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	header := append([]string{"sample_id"}, loci...)
	header = append(header, "mismatches", "error")
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, c := range cases {
		row := make([]string, 0, len(header))
		row = append(row, c.SampleID)

		res := results[i]
		if res.Err != nil {
			for range loci {
				row = append(row, "")
			}
			row = append(row, "", res.Err.Error())
		} else {
			for _, lc := range res.Counts {
				if lc.Count.Valid {
					row = append(row, strconv.FormatInt(lc.Count.Int64, 10))
				} else {
					row = append(row, "")
				}
			}
			row = append(row, mismatch.Format(res.Counts), "")
		}

		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteSummaries writes one row per case with the match-grade score. Cases
// that could not be scored carry the error text instead of a score.
func WriteSummaries(w io.Writer, delimiter rune, grade mismatch.Grade, cases []*Case, results []mismatch.SummaryResult) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	if err := cw.Write([]string{"sample_id", string(grade), "error"}); err != nil {
		return err
	}

	for i, c := range cases {
		res := results[i]
		if res.Err != nil {
			if err := cw.Write([]string{c.SampleID, "", res.Err.Error()}); err != nil {
				return err
			}
			continue
		}
		if err := cw.Write([]string{c.SampleID, strconv.Itoa(res.Score), ""}); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
