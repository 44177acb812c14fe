// Package mismatch compares two GL-string genotypes locus by locus and counts
// mismatched alleles, directionally and with a configurable convention for
// homozygous mismatches. Counts aggregate across loci, including grouped
// multi-gene loci, and sum into the standard out-of-8 and out-of-10 match
// grades.
package mismatch

import (
	"github.com/hlatools/glmatch/glstring"
)

// Count returns the number of mismatched alleles at one locus, between 0 and
// 2. Both genotypes are normalized to two slots before comparison, so a
// genotype typed with a single allele compares as homozygous-by-repetition.
//
// homozygousCount applies only when the examined side (donor for HvG/SOT,
// recipient for GvH) is homozygous and its allele is entirely absent from the
// other side: 2 counts both copies, 1 counts only one. Heterozygous
// mismatches always count per allele.
func Count(recipient, donor glstring.Genotype, dir Direction, homozygousCount int) (int, error) {
	if err := validate(dir, homozygousCount); err != nil {
		return 0, err
	}

	switch dir {
	case HvG, SOT:
		return oneWay(donor, recipient, homozygousCount), nil
	case GvH:
		return oneWay(recipient, donor, homozygousCount), nil
	}

	// Bidirectional: the worse of the two passes.
	hvg := oneWay(donor, recipient, homozygousCount)
	gvh := oneWay(recipient, donor, homozygousCount)
	if gvh > hvg {
		return gvh, nil
	}

	return hvg, nil
}

// oneWay counts examined alleles with no one-to-one partner among the
// reference alleles. Matching consumes partners: each reference allele can
// satisfy at most one examined allele, so a duplicated examined allele that
// the reference carries only once still shows one mismatch.
func oneWay(examined, reference glstring.Genotype, homozygousCount int) int {
	examined = examined.Normalized()
	reference = reference.Normalized()

	spent := make([]bool, len(reference))
	unmatched := 0
	for _, allele := range examined {
		matched := false
		for i, ref := range reference {
			if !spent[i] && ref == allele {
				spent[i] = true
				matched = true
				break
			}
		}
		if !matched {
			unmatched++
		}
	}

	if unmatched == 2 && examined.Homozygous() && homozygousCount == 1 {
		unmatched = 1
	}

	return unmatched
}
