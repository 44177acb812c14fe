package glstring

import (
	"fmt"
	"strings"
)

// Resolve picks the primary interpretation from an ambiguity list. The
// primary genotype is always position 0; the source order is authoritative
// and no reordering heuristic is applied. When keepRemainder is set, the
// remaining candidates are returned for the caller to store; otherwise they
// are discarded. An allele still containing a locus delimiter violates the
// precondition that loci were separated first.
func Resolve(candidates AmbiguityList, keepRemainder bool) (Genotype, AmbiguityList, error) {
	if len(candidates) == 0 {
		return nil, nil, fmt.Errorf("Resolve: empty ambiguity list: %w", ErrMalformedInput)
	}

	for _, genotype := range candidates {
		for _, allele := range genotype {
			if strings.Contains(string(allele), LocusDelimiter) {
				return nil, nil, fmt.Errorf("Resolve: allele %q still contains %q; separate loci before resolving ambiguity: %w", allele, LocusDelimiter, ErrUnexpectedDelimiter)
			}
		}
	}

	primary := candidates[0]
	if !keepRemainder || len(candidates) == 1 {
		return primary, nil, nil
	}

	return primary, candidates[1:], nil
}

// ResolveString is the string-level form of Resolve, for callers that hold an
// unparsed single-locus block. The remainder, if kept, is re-joined with '|'.
func ResolveString(block string, keepRemainder bool) (Genotype, string, error) {
	if strings.Contains(block, LocusDelimiter) {
		return nil, "", fmt.Errorf("ResolveString: %q still contains %q; separate loci before resolving ambiguity: %w", block, LocusDelimiter, ErrUnexpectedDelimiter)
	}

	parts := strings.Split(block, AmbiguityDelimiter)
	primary, err := parseGenotype(parts[0])
	if err != nil {
		return nil, "", err
	}

	remainder := ""
	if keepRemainder && len(parts) > 1 {
		remainder = strings.Join(parts[1:], AmbiguityDelimiter)
	}

	return primary, remainder, nil
}
