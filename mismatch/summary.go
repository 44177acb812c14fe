package mismatch

import (
	"errors"
	"fmt"
	"strings"
)

// Grade names a fixed locus panel for the standard HCT match summary.
type Grade string

const (
	// Xof8 sums mismatches over HLA-A, -B, -C, and -DRB1.
	Xof8 Grade = "Xof8"
	// Xof10 adds HLA-DQB1 to the Xof8 panel.
	Xof10 Grade = "Xof10"
)

var (
	// ErrInvalidGrade indicates a match grade outside the enumerated set.
	ErrInvalidGrade = errors.New("invalid match grade")

	// ErrIncompleteGenotype indicates a panel locus untyped for the
	// recipient or the donor. The clinical score is meaningless with missing
	// panel loci, so the summary never substitutes zero for them.
	ErrIncompleteGenotype = errors.New("incomplete genotype for match grade panel")
)

var panels = map[Grade][]string{
	Xof8:  {"HLA-A", "HLA-B", "HLA-C", "HLA-DRB1"},
	Xof10: {"HLA-A", "HLA-B", "HLA-C", "HLA-DRB1", "HLA-DQB1"},
}

// ParseGrade maps a case-insensitive flag value onto a Grade.
func ParseGrade(s string) (Grade, error) {
	switch strings.ToLower(s) {
	case "xof8":
		return Xof8, nil
	case "xof10":
		return Xof10, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrInvalidGrade)
}

// Summary sums mismatch counts over the grade's fixed panel into one integer
// per case. Homozygous mismatches count both copies. Every panel locus must
// be typed for both parties.
func Summary(recipientGL, donorGL string, dir Direction, grade Grade) (int, error) {
	panel, ok := panels[grade]
	if !ok {
		return 0, fmt.Errorf("%q: %w", grade, ErrInvalidGrade)
	}

	counts, err := Number(recipientGL, donorGL, panel, dir, 2)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, c := range counts {
		if !c.Count.Valid {
			return 0, fmt.Errorf("%s untyped for recipient or donor: %w", c.Locus, ErrIncompleteGenotype)
		}
		total += int(c.Count.Int64)
	}

	return total, nil
}

// SummaryResult is one case's match-grade score, or the error that prevented
// scoring it.
type SummaryResult struct {
	Score int
	Err   error
}

// SummaryBatch runs Summary over paired recipient and donor vectors, case by
// case, collecting per-case errors instead of aborting siblings. An invalid
// direction or grade aborts before any case is processed.
func SummaryBatch(recipients, donors []string, dir Direction, grade Grade) ([]SummaryResult, error) {
	if err := validate(dir, 2); err != nil {
		return nil, err
	}

	if _, ok := panels[grade]; !ok {
		return nil, fmt.Errorf("%q: %w", grade, ErrInvalidGrade)
	}

	if len(recipients) != len(donors) {
		return nil, fmt.Errorf("SummaryBatch: %d recipients paired with %d donors", len(recipients), len(donors))
	}

	out := make([]SummaryResult, len(recipients))
	for i := range recipients {
		score, err := Summary(recipients[i], donors[i], dir, grade)
		out[i] = SummaryResult{Score: score, Err: err}
	}

	return out, nil
}
