package cdecl

import "github.com/bits-and-blooms/bitset"

// Dialect enumerates every C/C++ standard the checker gates rules
// against (§6.4's `set` option surface). The values are ordered so
// range comparisons ("≥ C99", "≥ C++11") are a single integer
// comparison rather than a set-membership scan; K&R sits before C89
// in the C lineage and is otherwise ungated.
type Dialect int

const (
	DialectKNR Dialect = iota
	DialectC89
	DialectC95
	DialectC99
	DialectC11
	DialectC17
	DialectC23

	DialectCpp98
	DialectCpp03
	DialectCpp11
	DialectCpp14
	DialectCpp17
	DialectCpp20
	DialectCpp23
	DialectCpp26

	numDialects
)

var dialectNames = map[Dialect]string{
	DialectKNR:   "knr",
	DialectC89:   "c89",
	DialectC95:   "c95",
	DialectC99:   "c99",
	DialectC11:   "c11",
	DialectC17:   "c17",
	DialectC23:   "c23",
	DialectCpp98: "c++98",
	DialectCpp03: "c++03",
	DialectCpp11: "c++11",
	DialectCpp14: "c++14",
	DialectCpp17: "c++17",
	DialectCpp20: "c++20",
	DialectCpp23: "c++23",
	DialectCpp26: "c++26",
}

func (d Dialect) String() string {
	if n, ok := dialectNames[d]; ok {
		return n
	}
	return "unknown"
}

// ParseDialect implements the `set` command's language token (§6.4).
func ParseDialect(tok string) (Dialect, bool) {
	for d, n := range dialectNames {
		if n == tok {
			return d, true
		}
	}
	return 0, false
}

func (d Dialect) IsC() bool   { return d >= DialectKNR && d <= DialectC23 }
func (d Dialect) IsCpp() bool { return d >= DialectCpp98 && d <= DialectCpp26 }

// AtLeastC reports whether d is a C dialect at or above floor (e.g.
// `d.AtLeastC(DialectC99)` gates VLAs). Non-C dialects are never "at
// least" a C floor.
func (d Dialect) AtLeastC(floor Dialect) bool { return d.IsC() && d >= floor }

// AtLeastCpp is AtLeastC's C++ counterpart (e.g. rvalue references
// require `d.AtLeastCpp(DialectCpp11)`).
func (d Dialect) AtLeastCpp(floor Dialect) bool { return d.IsCpp() && d >= floor }

// DialectSet is the "set of dialects in which bits is legal" that
// `check()` returns (§4.1). Backed by a bitset rather than a
// map[Dialect]bool so P8 (legality is monotone: bits1 ⊆ bits2 implies
// check(bits2) ⊆ check(bits1)) is a single IsSuperSet call in tests.
type DialectSet struct{ bs *bitset.BitSet }

func NewDialectSet(ds ...Dialect) DialectSet {
	s := DialectSet{bs: bitset.New(uint(numDialects))}
	for _, d := range ds {
		s.bs.Set(uint(d))
	}
	return s
}

// AllC and AllCpp are convenience constructors for the common "legal
// in every C dialect" / "legal in every C++ dialect" and "legal
// everywhere" cases that dominate the keyword/bit tables.
func AllC() DialectSet {
	s := NewDialectSet()
	for d := DialectKNR; d <= DialectC23; d++ {
		s.bs.Set(uint(d))
	}
	return s
}

func AllCpp() DialectSet {
	s := NewDialectSet()
	for d := DialectCpp98; d <= DialectCpp26; d++ {
		s.bs.Set(uint(d))
	}
	return s
}

func AllDialects() DialectSet {
	s := AllC()
	s.Union(AllCpp())
	return s
}

// CFrom and CppFrom build "legal from this standard onward" sets,
// the shape most §4.3 dialect gates actually need ("requires ≥ C99").
func CFrom(floor Dialect) DialectSet {
	s := NewDialectSet()
	for d := floor; d <= DialectC23; d++ {
		s.bs.Set(uint(d))
	}
	return s
}

func CppFrom(floor Dialect) DialectSet {
	s := NewDialectSet()
	for d := floor; d <= DialectCpp26; d++ {
		s.bs.Set(uint(d))
	}
	return s
}

func (s DialectSet) Has(d Dialect) bool { return s.bs.Test(uint(d)) }
func (s DialectSet) Empty() bool        { return s.bs.None() }
func (s DialectSet) Count() int         { return int(s.bs.Count()) }

func (s *DialectSet) Union(other DialectSet) { s.bs.InPlaceUnion(other.bs) }

func (s DialectSet) IsSuperSet(other DialectSet) bool {
	return other.bs.Difference(s.bs).None()
}

func (s DialectSet) Clone() DialectSet { return DialectSet{bs: s.bs.Clone()} }

func (s DialectSet) String() string {
	out := ""
	for d := Dialect(0); d < numDialects; d++ {
		if s.Has(d) {
			if out != "" {
				out += ","
			}
			out += d.String()
		}
	}
	if out == "" {
		return "<none>"
	}
	return out
}
