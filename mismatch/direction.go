package mismatch

import (
	"errors"
	"fmt"
	"strings"
)

// Direction selects which party's alleles are examined for mismatches.
type Direction string

const (
	// HvG counts donor alleles absent from the recipient: antigens in the
	// graft that the host may respond against.
	HvG Direction = "HvG"
	// GvH counts recipient alleles absent from the donor.
	GvH Direction = "GvH"
	// Bidirectional is the per-locus maximum of HvG and GvH.
	Bidirectional Direction = "bidirectional"
	// SOT is the solid-organ-transplant convention, an alias for HvG.
	SOT Direction = "SOT"
)

// ErrInvalidDirection indicates a direction outside the enumerated set.
var ErrInvalidDirection = errors.New("invalid mismatch direction")

// ParseDirection maps a case-insensitive flag value onto a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "hvg":
		return HvG, nil
	case "gvh":
		return GvH, nil
	case "bidirectional":
		return Bidirectional, nil
	case "sot":
		return SOT, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrInvalidDirection)
}

func validate(dir Direction, homozygousCount int) error {
	switch dir {
	case HvG, GvH, Bidirectional, SOT:
	default:
		return fmt.Errorf("%q: %w", dir, ErrInvalidDirection)
	}

	if homozygousCount != 1 && homozygousCount != 2 {
		return fmt.Errorf("a homozygous mismatch counts as 1 or 2 copies, not %d", homozygousCount)
	}

	return nil
}
