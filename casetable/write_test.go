package casetable

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gopkg.in/guregu/null.v3"

	"github.com/hlatools/glmatch/mismatch"
)

func TestWriteCounts(t *testing.T) {
	cases := []*Case{
		{SampleID: "S1"},
		{SampleID: "S2"},
	}
	results := []mismatch.CaseResult{
		{Counts: []mismatch.LocusCount{
			{Locus: "HLA-A", Count: null.IntFrom(1)},
			{Locus: "HLA-B", Count: null.Int{}},
		}},
		{Err: errors.New("recipient: malformed GL string")},
	}

	buf := &bytes.Buffer{}
	if err := WriteCounts(buf, '\t', []string{"HLA-A", "HLA-B"}, cases, results); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("wrote %d lines, expected header plus 2 cases", len(lines))
	}

	if lines[0] != "sample_id\tHLA-A\tHLA-B\tmismatches\terror" {
		t.Errorf("header: %q", lines[0])
	}

	// The undefined HLA-B count renders as an empty cell, never as 0.
	if lines[1] != "S1\t1\t\tHLA-A=1, HLA-B\t" {
		t.Errorf("case row: %q", lines[1])
	}

	if !strings.HasPrefix(lines[2], "S2\t\t\t\t") || !strings.Contains(lines[2], "malformed") {
		t.Errorf("failed-case row: %q", lines[2])
	}
}

func TestWriteSummaries(t *testing.T) {
	cases := []*Case{{SampleID: "S1"}, {SampleID: "S2"}}
	results := []mismatch.SummaryResult{
		{Score: 3},
		{Err: errors.New("HLA-DQB1 untyped for recipient or donor")},
	}

	buf := &bytes.Buffer{}
	if err := WriteSummaries(buf, '\t', mismatch.Xof10, cases, results); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "sample_id\tXof10\terror" {
		t.Errorf("header: %q", lines[0])
	}
	if lines[1] != "S1\t3\t" {
		t.Errorf("scored row: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "S2\t\t") {
		t.Errorf("failed row: %q", lines[2])
	}
}
