package mismatch

// Groups maps a grouped locus name to the physical gene loci it spans. The
// serologic DR51/52/53 name is an alias for the DRB3/4/5 gene group. The
// table is fixed at load and read-only afterwards, so concurrent readers need
// no coordination.
var Groups = map[string][]string{
	"HLA-DRB3/4/5":   {"HLA-DRB3", "HLA-DRB4", "HLA-DRB5"},
	"HLA-DR51/52/53": {"HLA-DRB3", "HLA-DRB4", "HLA-DRB5"},
}

// Members returns the physical loci behind a requested locus name. An
// ungrouped name is its own single member.
func Members(name string) []string {
	if members, ok := Groups[name]; ok {
		return members
	}

	return []string{name}
}
