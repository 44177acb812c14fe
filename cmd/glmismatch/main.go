// glmismatch computes per-locus HLA mismatch counts for each recipient/donor
// case in a delimited table of GL strings.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/hlatools/glmatch"
	"github.com/hlatools/glmatch/casetable"
	_ "github.com/hlatools/glmatch/compileinfoprint"
	"github.com/hlatools/glmatch/mismatch"
)

var client *storage.Client

func main() {
	var input, output, lociFlag, directionFlag, layout, customLayout string
	var homozygousCount, concurrency int

	flag.StringVar(&input, "input", "", "Case table with sample_id, recipient_gl, and donor_gl columns. Optionally, may be a google storage URL (gs://)")
	flag.StringVar(&output, "output", "", "Path to the output file. If empty, output goes to STDOUT")
	flag.StringVar(&lociFlag, "loci", "HLA-A,HLA-B,HLA-C,HLA-DRB1", "Comma-separated loci to evaluate. Grouped names such as HLA-DRB3/4/5 are permitted")
	flag.StringVar(&directionFlag, "direction", "bidirectional", "Mismatch direction: HvG, GvH, bidirectional, or SOT")
	flag.IntVar(&homozygousCount, "homozygous-count", 2, "Whether a homozygous mismatched allele counts as 1 or 2 mismatches")
	flag.StringVar(&layout, "layout", "", fmt.Sprint("Optional: named layout for a headerless table. Options: ", casetable.LayoutNames()))
	flag.StringVar(&customLayout, "custom-layout", "", "Optional: a headerless layout with 0-based columns as follows: SampleCol,RecipientCol,DonorCol")
	flag.IntVar(&concurrency, "concurrency", runtime.NumCPU(), "Number of cases to evaluate concurrently")
	flag.Parse()

	if input == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --input")
	}

	// Configuration errors abort before any case is touched.
	direction, err := mismatch.ParseDirection(directionFlag)
	if err != nil {
		log.Fatalln(err)
	}

	if homozygousCount != 1 && homozygousCount != 2 {
		log.Fatalf("--homozygous-count must be 1 or 2, not %d\n", homozygousCount)
	}

	loci := splitLoci(lociFlag)
	if len(loci) == 0 {
		log.Fatalln("Please provide at least one locus via --loci")
	}

	if customLayout != "" {
		layout = "CUSTOM"
		casetable.Layouts["CUSTOM"] = parseCustomLayout(customLayout)
	}

	if strings.HasPrefix(input, "gs://") {
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
	}

	cases, err := loadCases(input, layout)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Evaluating", len(cases), "cases at", len(loci), "loci")

	results := evaluateAll(cases, loci, direction, homozygousCount, concurrency)

	failed := 0
	for i, res := range results {
		if res.Err != nil {
			failed++
			log.Printf("case %s: %v\n", cases[i].SampleID, res.Err)
		}
	}
	if failed > 0 {
		log.Println(failed, "of", len(cases), "cases could not be evaluated")
	}

	var out io.WriteCloser = os.Stdout
	if output != "" {
		out, err = os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			log.Fatalln(err)
		}
		defer out.Close()
	}

	if err := casetable.WriteCounts(out, '\t', loci, cases, results); err != nil {
		log.Fatalln(err)
	}
}

func loadCases(input, layout string) ([]*casetable.Case, error) {
	fileBytes, delimiter, err := glmatch.ReadCaseTable(input, client)
	if err != nil {
		return nil, err
	}

	if layout == "" {
		return casetable.ReadCases(fileBytes, delimiter)
	}

	l, exists := casetable.Layouts[layout]
	if !exists {
		return nil, fmt.Errorf("layout %s is not found. Valid layout names include: %s", layout, casetable.LayoutNames())
	}

	return casetable.ReadCasesLayout(strings.NewReader(string(fileBytes)), l)
}

func splitLoci(lociFlag string) []string {
	loci := make([]string, 0)
	for _, locus := range strings.Split(lociFlag, ",") {
		locus = strings.TrimSpace(locus)
		if locus != "" {
			loci = append(loci, locus)
		}
	}

	return loci
}

func parseCustomLayout(customLayout string) casetable.Layout {
	cols := strings.Split(customLayout, ",")
	if x := len(cols); x != 3 {
		log.Fatalf("--custom-layout was toggled; 3 column numbers were expected, but %d were given\n", x)
	}

	intCols := make([]int, 0, len(cols))
	for i, col := range cols {
		j, err := strconv.ParseInt(col, 10, 32)
		if err != nil {
			log.Fatalf("The identifier for column %d (value %s) is not an integer\n", i, col)
		}
		intCols = append(intCols, int(j))
	}

	return casetable.Layout{
		Delimiter:    '\t',
		Comment:      '#',
		ColSample:    intCols[0],
		ColRecipient: intCols[1],
		ColDonor:     intCols[2],
	}
}
