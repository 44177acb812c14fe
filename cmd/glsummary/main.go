// glsummary scores each recipient/donor case in a delimited table of GL
// strings against a fixed HCT match-grade panel (out-of-8 or out-of-10) and
// reports the cohort distribution of the scores.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/montanaflynn/stats"

	"github.com/hlatools/glmatch"
	"github.com/hlatools/glmatch/casetable"
	_ "github.com/hlatools/glmatch/compileinfoprint"
	"github.com/hlatools/glmatch/mismatch"
)

var client *storage.Client

func main() {
	var input, output, gradeFlag, directionFlag, layout, customLayout string

	flag.StringVar(&input, "input", "", "Case table with sample_id, recipient_gl, and donor_gl columns. Optionally, may be a google storage URL (gs://)")
	flag.StringVar(&output, "output", "", "Path to the output file. If empty, output goes to STDOUT")
	flag.StringVar(&gradeFlag, "grade", "Xof8", "Match grade panel: Xof8 or Xof10")
	flag.StringVar(&directionFlag, "direction", "bidirectional", "Mismatch direction: HvG, GvH, bidirectional, or SOT")
	flag.StringVar(&layout, "layout", "", fmt.Sprint("Optional: named layout for a headerless table. Options: ", casetable.LayoutNames()))
	flag.StringVar(&customLayout, "custom-layout", "", "Optional: a headerless layout with 0-based columns as follows: SampleCol,RecipientCol,DonorCol")
	flag.Parse()

	if input == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --input")
	}

	grade, err := mismatch.ParseGrade(gradeFlag)
	if err != nil {
		log.Fatalln(err)
	}

	direction, err := mismatch.ParseDirection(directionFlag)
	if err != nil {
		log.Fatalln(err)
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
	log.Println("Scoring", len(cases), "cases against the", grade, "panel")

	results, err := mismatch.SummaryBatch(casetable.Recipients(cases), casetable.Donors(cases), direction, grade)
	if err != nil {
		log.Fatalln(err)
	}

	scores := make([]float64, 0, len(results))
	for i, res := range results {
		if res.Err != nil {
			log.Printf("case %s: %v\n", cases[i].SampleID, res.Err)
			continue
		}
		scores = append(scores, float64(res.Score))
	}

	var out io.WriteCloser = os.Stdout
	if output != "" {
		out, err = os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			log.Fatalln(err)
		}
		defer out.Close()
	}

	if err := casetable.WriteSummaries(out, '\t', grade, cases, results); err != nil {
		log.Fatalln(err)
	}

	logCohort(scores, len(cases))
}

// logCohort summarizes the distribution of the computed scores. Cases that
// could not be scored are excluded.
func logCohort(scores []float64, total int) {
	if len(scores) == 0 {
		log.Println("No cases could be scored")
		return
	}

	mean, _ := stats.Mean(scores)
	median, _ := stats.Median(scores)
	min, _ := stats.Min(scores)
	max, _ := stats.Max(scores)

	log.Printf("Scored %d of %d cases. Mismatch sum mean %.2f, median %.1f, min %.0f, max %.0f\n", len(scores), total, mean, median, min, max)
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
