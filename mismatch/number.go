package mismatch

import (
	"fmt"
	"strings"

	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"

	"github.com/hlatools/glmatch/glstring"
)

// LocusCount is the mismatch count at one requested locus. An invalid Count
// means the locus was untyped for the recipient or the donor; that state is
// distinct from a genuine zero-mismatch result and is only normalized away at
// display time, by Format.
type LocusCount struct {
	Locus string
	Count null.Int
}

// Number computes per-locus mismatch counts between one recipient and one
// donor. A requested locus that names a group (see Groups) is parsed and
// resolved per member gene, and the member counts are summed under the group
// name.
func Number(recipientGL, donorGL string, loci []string, dir Direction, homozygousCount int) ([]LocusCount, error) {
	if err := validate(dir, homozygousCount); err != nil {
		return nil, err
	}

	recipient, err := glstring.Parse(recipientGL)
	if err != nil {
		return nil, fmt.Errorf("recipient: %w", err)
	}

	donor, err := glstring.Parse(donorGL)
	if err != nil {
		return nil, fmt.Errorf("donor: %w", err)
	}

	out := make([]LocusCount, 0, len(loci))
	for _, locus := range loci {
		count, err := locusCount(recipient, donor, locus, dir, homozygousCount)
		if err != nil {
			return nil, pfx.Err(err)
		}
		out = append(out, LocusCount{Locus: locus, Count: count})
	}

	return out, nil
}

// locusCount sums counts over the member genes of one requested locus. A
// member untyped on either side contributes nothing; if no member is typed
// for both parties the result is invalid.
func locusCount(recipient, donor glstring.Genotypes, locus string, dir Direction, homozygousCount int) (null.Int, error) {
	sum := 0
	typed := false
	for _, member := range Members(locus) {
		recipientList, ok := recipient[member]
		if !ok {
			continue
		}
		donorList, ok := donor[member]
		if !ok {
			continue
		}

		recipientGenotype, _, err := glstring.Resolve(recipientList, false)
		if err != nil {
			return null.Int{}, err
		}
		donorGenotype, _, err := glstring.Resolve(donorList, false)
		if err != nil {
			return null.Int{}, err
		}

		n, err := Count(recipientGenotype, donorGenotype, dir, homozygousCount)
		if err != nil {
			return null.Int{}, err
		}

		sum += n
		typed = true
	}

	if !typed {
		return null.Int{}, nil
	}

	return null.IntFrom(int64(sum)), nil
}

// Format renders per-locus counts as "HLA-A=1, HLA-B=0", preserving the
// requested locus order. A locus with no computable count renders as the bare
// locus name, with no numeric suffix.
func Format(counts []LocusCount) string {
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		if !c.Count.Valid {
			parts = append(parts, c.Locus)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%d", c.Locus, c.Count.Int64))
	}

	return strings.Join(parts, ", ")
}

// CaseResult is the outcome for one recipient/donor pair of a batch. Err is
// set when that pair's GL strings could not be processed; sibling cases are
// unaffected.
type CaseResult struct {
	Counts []LocusCount
	Err    error
}

// NumberBatch runs Number over paired recipient and donor GL-string vectors.
// Case i of the recipients pairs with case i of the donors, and cases are
// independent: a malformed case is reported in its own CaseResult without
// aborting the rest. An invalid direction or homozygous count aborts before
// any case is processed.
func NumberBatch(recipients, donors []string, loci []string, dir Direction, homozygousCount int) ([]CaseResult, error) {
	if err := validate(dir, homozygousCount); err != nil {
		return nil, err
	}

	if len(recipients) != len(donors) {
		return nil, fmt.Errorf("NumberBatch: %d recipients paired with %d donors", len(recipients), len(donors))
	}

	out := make([]CaseResult, len(recipients))
	for i := range recipients {
		counts, err := Number(recipients[i], donors[i], loci, dir, homozygousCount)
		out[i] = CaseResult{Counts: counts, Err: err}
	}

	return out, nil
}
