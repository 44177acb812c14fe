package glstring

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	got, err := Parse("HLA-A*01:01+HLA-A*02:01^HLA-B*08:01^HLA-DRB1*03:01+HLA-DRB1*04:01|HLA-DRB1*03:02+HLA-DRB1*04:02")
	if err != nil {
		t.Fatal(err)
	}

	want := Genotypes{
		"HLA-A": {{"HLA-A*01:01", "HLA-A*02:01"}},
		"HLA-B": {{"HLA-B*08:01"}},
		"HLA-DRB1": {
			{"HLA-DRB1*03:01", "HLA-DRB1*04:01"},
			{"HLA-DRB1*03:02", "HLA-DRB1*04:02"},
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parsed %+v, expected %+v", got, want)
	}
}

func TestParseAbsentLocus(t *testing.T) {
	got, err := Parse("HLA-A*01:01+HLA-A*02:01")
	if err != nil {
		t.Fatal(err)
	}

	if _, present := got["HLA-B"]; present {
		t.Fatal("HLA-B was never typed and must be absent from the mapping")
	}
}

func TestParseMalformed(t *testing.T) {
	for _, gl := range []string{
		"",
		"01:01",
		"*01:01",
		"HLA-A*01:01^",
		"HLA-A*01:01+HLA-A",
		"HLA A*01:01",
		"HLA-A*01:01+HLA-A*02:01+HLA-A*03:01",
	} {
		if _, err := Parse(gl); !errors.Is(err, ErrMalformedInput) {
			t.Errorf("Parse(%q): expected ErrMalformedInput, got %v", gl, err)
		}
	}
}

func TestAlleleLocus(t *testing.T) {
	for _, v := range []struct {
		allele Allele
		locus  string
	}{
		{"HLA-A*01:01", "HLA-A"},
		{"HLA-DRB3*02:02", "HLA-DRB3"},
		{"01:01", ""},
	} {
		if got := v.allele.Locus(); got != v.locus {
			t.Errorf("Locus of %q: got %q, expected %q", v.allele, got, v.locus)
		}
	}
}

func TestNormalized(t *testing.T) {
	single := Genotype{"HLA-A*01:01"}
	double := Genotype{"HLA-A*01:01", "HLA-A*01:01"}

	if !reflect.DeepEqual(single.Normalized(), double) {
		t.Fatal("a lone allele must normalize to homozygous-by-repetition form")
	}

	// Already-canonical genotypes pass through unchanged.
	if !reflect.DeepEqual(double.Normalized(), double) {
		t.Fatal("normalization must be idempotent")
	}

	if !single.Homozygous() || !double.Homozygous() {
		t.Fatal("both forms are homozygous")
	}

	if (Genotype{"HLA-A*01:01", "HLA-A*02:01"}).Homozygous() {
		t.Fatal("distinct designations are heterozygous")
	}
}

func TestStringRoundTrip(t *testing.T) {
	list := AmbiguityList{
		{"HLA-A*01:01", "HLA-A*02:01"},
		{"HLA-A*01:02", "HLA-A*02:02"},
	}

	if got, want := list.String(), "HLA-A*01:01+HLA-A*02:01|HLA-A*01:02+HLA-A*02:02"; got != want {
		t.Fatalf("Rendered %q, expected %q", got, want)
	}
}
