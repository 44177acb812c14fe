package glstring

import (
	"fmt"
	"strings"
)

// Parse splits a GL string into locus-keyed ambiguity lists. The empty string
// is an error; an untyped locus is expressed by leaving its block out
// entirely, not by an empty block.
func Parse(gl string) (Genotypes, error) {
	if gl == "" {
		return nil, fmt.Errorf("Parse: empty GL string: %w", ErrMalformedInput)
	}

	out := make(Genotypes)
	for _, block := range strings.Split(gl, LocusDelimiter) {
		locus, err := locusName(block)
		if err != nil {
			return nil, err
		}

		candidates := make(AmbiguityList, 0, 1)
		for _, candidate := range strings.Split(block, AmbiguityDelimiter) {
			genotype, err := parseGenotype(candidate)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, genotype)
		}

		out[locus] = candidates
	}

	return out, nil
}

// parseGenotype splits one ambiguity candidate on '+'. Each allele token must
// contain a '*', and a genotype holds at most two alleles.
func parseGenotype(candidate string) (Genotype, error) {
	tokens := strings.Split(candidate, AlleleDelimiter)
	if len(tokens) > 2 {
		return nil, fmt.Errorf("Parse: %q holds %d alleles but a genotype holds at most two: %w", candidate, len(tokens), ErrMalformedInput)
	}

	genotype := make(Genotype, 0, 2)
	for _, token := range tokens {
		allele := Allele(strings.TrimSpace(token))
		if allele.Locus() == "" {
			return nil, fmt.Errorf("Parse: allele %q is not in locus*designation form: %w", token, ErrMalformedInput)
		}
		genotype = append(genotype, allele)
	}

	return genotype, nil
}

// locusName extracts the leading locus identifier of a block: the run of
// letters, digits, and hyphens preceding the first '*'.
func locusName(block string) (string, error) {
	star := strings.IndexByte(block, '*')
	if star < 1 {
		return "", fmt.Errorf("Parse: no locus name found in block %q: %w", block, ErrMalformedInput)
	}

	name := block[:star]
	for _, r := range name {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' {
			continue
		}
		return "", fmt.Errorf("Parse: locus name %q contains %q: %w", name, r, ErrMalformedInput)
	}

	return name, nil
}
