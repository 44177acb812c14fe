package casetable

import "strings"

// Layout describes the columns of a headerless case table: which 0-based
// column holds the sample identifier and which hold the recipient and donor
// GL strings. Tables with a header row use named columns instead; see
// ReadCases.
type Layout struct {
	Delimiter    rune
	Comment      rune
	ColSample    int
	ColRecipient int
	ColDonor     int
}

var Layouts = map[string]Layout{
	"TSV": {
		Delimiter:    '\t',
		Comment:      '#',
		ColSample:    0,
		ColRecipient: 1,
		ColDonor:     2,
	},
}

func LayoutNames() string {
	b := strings.Builder{}
	i := 0
	for m := range Layouts {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(m)
		i++
	}

	return b.String()
}
