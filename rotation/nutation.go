package rotation

// NutationPrecision historically selected between a fast approximate and a
// high-precision nutation series. This module carries only the standard
// 30-term series (see nutationTerms in coord.go) — there is no package-level
// mode to select, and no mutable package state: every exported function
// here is a pure function of its epoch argument, which is required for an
// Almanac to be safely shared across goroutines without locking.
type NutationPrecision int

const (
	// NutationStandard is the only precision mode implemented: the 30
	// largest luni-solar terms, ~1 arcsec precision.
	NutationStandard NutationPrecision = iota
)
