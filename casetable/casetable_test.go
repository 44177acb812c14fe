package casetable

import (
	"strings"
	"testing"
)

func TestReadCases(t *testing.T) {
	table := "sample_id,recipient_gl,donor_gl\n" +
		"S1,HLA-A*01:01+HLA-A*02:01,HLA-A*01:01+HLA-A*02:01\n" +
		"S2,HLA-A*01:01,HLA-A*03:01\n"

	cases, err := ReadCases([]byte(table), ',')
	if err != nil {
		t.Fatal(err)
	}

	if len(cases) != 2 {
		t.Fatalf("read %d cases, expected 2", len(cases))
	}

	if cases[0].SampleID != "S1" ||
		cases[0].RecipientGL != "HLA-A*01:01+HLA-A*02:01" ||
		cases[1].DonorGL != "HLA-A*03:01" {
		t.Errorf("Mismatch: %+v / %+v", cases[0], cases[1])
	}
}

func TestReadCasesLayout(t *testing.T) {
	table := "# headerless export\n" +
		"S1\tHLA-A*01:01\tHLA-A*02:01\n" +
		"S2\tHLA-B*07:02\tHLA-B*08:01\n"

	cases, err := ReadCasesLayout(strings.NewReader(table), Layouts["TSV"])
	if err != nil {
		t.Fatal(err)
	}

	if len(cases) != 2 {
		t.Fatalf("read %d cases, expected 2", len(cases))
	}

	if cases[1].SampleID != "S2" || cases[1].RecipientGL != "HLA-B*07:02" || cases[1].DonorGL != "HLA-B*08:01" {
		t.Errorf("Mismatch: %+v", cases[1])
	}
}

func TestReadCasesLayoutShortRow(t *testing.T) {
	if _, err := ReadCasesLayout(strings.NewReader("S1\tHLA-A*01:01\n"), Layouts["TSV"]); err == nil {
		t.Fatal("expected an error for a row missing the donor column")
	}
}
