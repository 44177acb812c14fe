// Package glstring models genotypes expressed in GL-string notation: locus
// blocks separated by '^', ambiguity candidates separated by '|', and the
// alleles of one candidate separated by '+'. Allele designations themselves
// are opaque; nomenclature validation belongs upstream.
package glstring

import (
	"errors"
	"strings"
)

const (
	// LocusDelimiter separates independent locus blocks within one record.
	LocusDelimiter = "^"
	// AmbiguityDelimiter separates mutually exclusive interpretations of one
	// locus. The first interpretation is the primary one.
	AmbiguityDelimiter = "|"
	// AlleleDelimiter separates the (at most two) alleles of one
	// interpretation.
	AlleleDelimiter = "+"
)

var (
	// ErrMalformedInput indicates a GL string that violates the delimiter
	// grammar.
	ErrMalformedInput = errors.New("malformed GL string")

	// ErrUnexpectedDelimiter indicates a locus delimiter found where loci
	// were expected to be separated already.
	ErrUnexpectedDelimiter = errors.New("unexpected locus delimiter")
)

// Allele is one allele designation, carrying its locus prefix (e.g.
// "HLA-A*01:01").
type Allele string

// Locus returns the locus portion of the designation (the text before the
// first '*'), or "" if there is none.
func (a Allele) Locus() string {
	i := strings.IndexByte(string(a), '*')
	if i < 0 {
		return ""
	}

	return string(a)[:i]
}

// Genotype is the unordered multiset of one or two alleles reported at a
// single locus. A lone allele means the locus was typed
// homozygous-by-omission.
type Genotype []Allele

// Normalized returns the genotype in canonical two-slot form: a lone allele
// is duplicated, so that homozygous-by-omission and homozygous-by-repetition
// compare identically.
func (g Genotype) Normalized() Genotype {
	if len(g) == 1 {
		return Genotype{g[0], g[0]}
	}

	return g
}

// Homozygous reports whether both normalized slots carry the same
// designation.
func (g Genotype) Homozygous() bool {
	n := g.Normalized()

	return len(n) == 2 && n[0] == n[1]
}

func (g Genotype) String() string {
	parts := make([]string, 0, len(g))
	for _, a := range g {
		parts = append(parts, string(a))
	}

	return strings.Join(parts, AlleleDelimiter)
}

// AmbiguityList is the ordered candidate genotypes for one locus. Position 0
// is the primary interpretation; order comes from the source GL string and is
// authoritative.
type AmbiguityList []Genotype

func (l AmbiguityList) String() string {
	parts := make([]string, 0, len(l))
	for _, g := range l {
		parts = append(parts, g.String())
	}

	return strings.Join(parts, AmbiguityDelimiter)
}

// Genotypes maps a locus name to its ambiguity candidates. A locus that was
// never typed is simply absent from the map.
type Genotypes map[string]AmbiguityList
