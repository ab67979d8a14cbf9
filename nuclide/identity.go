package nuclide

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadIdentifier is returned when no supported identifier shape
// matches the input, or a symbol cannot be found in the catalog.
var ErrBadIdentifier = errors.New("unrecognized nuclide identifier")

// Identifier is implemented by values that can state their own proton
// count and mass number. It is the first shape tried by Resolve.
type Identifier interface {
	NuclideZA() (z, a int)
}

// EnergyIdentifier extends Identifier with an excitation energy.
type EnergyIdentifier interface {
	Identifier
	NuclideE() float64
}

// SplitZaid splits a ZAID integer into (Z, A) using the last-three-
// digits rule: Z = zaid/1000, A = zaid%1000.
func SplitZaid(zaid int) (z, a int) {
	return zaid / 1000, zaid % 1000
}

// ParseZaid parses a ZAID from its string form. Leading zeros and any
// trailing fractional suffix are stripped first, so "08016" and
// "8016.0" both yield (8, 16).
func ParseZaid(s string) (z, a int, err error) {
	s = strings.TrimSpace(s)
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s = s[:dot]
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad ZAID %q", ErrBadIdentifier, s)
	}
	if v < 0 {
		return 0, 0, fmt.Errorf("%w: negative ZAID %d", ErrBadIdentifier, v)
	}
	z, a = SplitZaid(v)
	return z, a, nil
}

// parsedID is the normalized result of identifier-shape dispatch,
// before finalization and enrichment.
type parsedID struct {
	z, a       int
	e          float64
	hasE       bool
	metastable bool
}

// parseID normalizes any supported identifier shape into a parsedID.
// The shapes form a closed, ordered set; the first structural match
// wins:
//
//  1. values carrying their own Z/A (Nuclide, ZA, Identifier)
//  2. mappings with "Z"/"A" (and optionally "E") keys
//  3. integers and all-digit strings, read as ZAID
//  4. strings containing letters, e.g. "U235", "u-235", "235U", "Am242m"
func (l *Library) parseID(id any) (parsedID, error) {
	switch v := id.(type) {
	case Nuclide:
		return parsedID{z: v.Z, a: v.A, e: v.E, hasE: v.E != 0, metastable: v.Metastable}, nil
	case *Nuclide:
		if v == nil {
			return parsedID{}, fmt.Errorf("%w: nil *Nuclide", ErrBadIdentifier)
		}
		return parsedID{z: v.Z, a: v.A, e: v.E, hasE: v.E != 0, metastable: v.Metastable}, nil
	case ZA:
		return parsedID{z: v.Z, a: v.A}, nil
	case EnergyIdentifier:
		z, a := v.NuclideZA()
		e := v.NuclideE()
		return parsedID{z: z, a: a, e: e, hasE: e != 0}, nil
	case Identifier:
		z, a := v.NuclideZA()
		return parsedID{z: z, a: a}, nil
	case map[string]int:
		return parseIDMap(v, func(n int) (float64, bool) { return float64(n), true })
	case map[string]float64:
		return parseIDMap(v, func(n float64) (float64, bool) { return n, true })
	case map[string]any:
		return parseIDMap(v, asFloat)
	case []int:
		switch len(v) {
		case 2:
			return parsedID{z: v[0], a: v[1]}, nil
		default:
			return parsedID{}, fmt.Errorf("%w: want [Z, A], got %d elements", ErrBadIdentifier, len(v))
		}
	case []float64:
		switch len(v) {
		case 2:
			return parsedID{z: int(v[0]), a: int(v[1])}, nil
		case 3:
			return parsedID{z: int(v[0]), a: int(v[1]), e: v[2], hasE: v[2] != 0}, nil
		default:
			return parsedID{}, fmt.Errorf("%w: want [Z, A] or [Z, A, E], got %d elements", ErrBadIdentifier, len(v))
		}
	case int:
		z, a := SplitZaid(v)
		return parsedID{z: z, a: a}, nil
	case int32:
		z, a := SplitZaid(int(v))
		return parsedID{z: z, a: a}, nil
	case int64:
		z, a := SplitZaid(int(v))
		return parsedID{z: z, a: a}, nil
	case string:
		return l.parseStringID(v)
	default:
		return parsedID{}, fmt.Errorf("%w: unsupported type %T", ErrBadIdentifier, id)
	}
}

func parseIDMap[T any](m map[string]T, conv func(T) (float64, bool)) (parsedID, error) {
	zv, zok := m["Z"]
	av, aok := m["A"]
	if !zok || !aok {
		return parsedID{}, fmt.Errorf(`%w: mapping must have "Z" and "A" keys`, ErrBadIdentifier)
	}
	zf, ok := conv(zv)
	if !ok {
		return parsedID{}, fmt.Errorf(`%w: non-numeric "Z" value`, ErrBadIdentifier)
	}
	af, ok := conv(av)
	if !ok {
		return parsedID{}, fmt.Errorf(`%w: non-numeric "A" value`, ErrBadIdentifier)
	}
	pid := parsedID{z: int(zf), a: int(af)}
	if ev, ok := m["E"]; ok {
		ef, ok := conv(ev)
		if !ok {
			return parsedID{}, fmt.Errorf(`%w: non-numeric "E" value`, ErrBadIdentifier)
		}
		pid.e = ef
		pid.hasE = ef != 0
	}
	return pid, nil
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// parseStringID handles shape 3 (all-digit ZAID strings) and shape 4
// (alphanumeric names).
func (l *Library) parseStringID(s string) (parsedID, error) {
	if !strings.ContainsFunc(s, isLetter) {
		z, a, err := ParseZaid(s)
		if err != nil {
			return parsedID{}, err
		}
		return parsedID{z: z, a: a}, nil
	}
	return l.parseName(s)
}

// parseName resolves alphanumeric forms: "U235", "U-235", "235U",
// "235-U", "Am242m", "AM-242M". Case-insensitive. A trailing "m"
// immediately after the numeric part marks the metastable state.
func (l *Library) parseName(s string) (parsedID, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "" {
		return parsedID{}, fmt.Errorf("%w: empty name", ErrBadIdentifier)
	}

	var pid parsedID
	if n := len(name); n >= 2 && name[n-1] == 'M' && isDigit(name[n-2]) {
		pid.metastable = true
		name = name[:n-1]
	}

	// Split into a letters part and a digits part: by the hyphen when
	// present, otherwise by character class.
	var s1, s2 string
	if before, after, found := strings.Cut(name, "-"); found {
		s1 = strings.TrimSpace(before)
		s2 = strings.TrimSpace(after)
	} else {
		var letters, rest strings.Builder
		for _, r := range name {
			if isLetter(r) {
				letters.WriteRune(r)
			} else {
				rest.WriteRune(r)
			}
		}
		s1 = letters.String()
		s2 = strings.TrimSpace(rest.String())
	}

	// The order of the symbol and mass-number parts is not fixed by the
	// shape alone, so try one order and fall back to the other.
	if z, a, ok := l.symbolAndMass(s1, s2); ok {
		pid.z, pid.a = z, a
		return pid, nil
	}
	if z, a, ok := l.symbolAndMass(s2, s1); ok {
		pid.z, pid.a = z, a
		return pid, nil
	}
	return parsedID{}, fmt.Errorf("%w: no element matches %q", ErrBadIdentifier, s)
}

func (l *Library) symbolAndMass(sym, mass string) (z, a int, ok bool) {
	z, ok = l.elements.Z(sym)
	if !ok {
		return 0, 0, false
	}
	a, err := strconv.Atoi(mass)
	if err != nil {
		return 0, 0, false
	}
	return z, a, true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
