package state

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// State is the canonical lifecycle state of an equipment item.
type State string

const (
	Stock    State = "stock"
	Broken   State = "broken"
	Stolen   State = "stolen"
	InRepair State = "in_repair"
	Old      State = "old"
	Reserved State = "reserved"
	Sold     State = "sold"
	Active   State = "active"
	Unknown  State = "unknown"
)

// All lists every canonical state, Unknown last.
var All = []State{Stock, Broken, Stolen, InRepair, Old, Reserved, Sold, Active, Unknown}

// aliases maps folded spellings (lower case, no accents, single spaces) to states.
var aliases = map[string]State{
	"stock":         Stock,
	"in stock":      Stock,
	"estoque":       Stock,
	"em estoque":    Stock,
	"broken":        Broken,
	"quebrado":      Broken,
	"danificado":    Broken,
	"defeito":       Broken,
	"stolen":        Stolen,
	"roubado":       Stolen,
	"furtado":       Stolen,
	"in repair":     InRepair,
	"in_repair":     InRepair,
	"repair":        InRepair,
	"em reparo":     InRepair,
	"reparo":        InRepair,
	"em manutencao": InRepair,
	"manutencao":    InRepair,
	"old":           Old,
	"antigo":        Old,
	"obsoleto":      Old,
	"reserved":      Reserved,
	"reservado":     Reserved,
	"sold":          Sold,
	"vendido":       Sold,
	"active":        Active,
	"ativo":         Active,
	"em uso":        Active,
}

var labels = map[State]string{
	Stock:    "In stock - OK",
	Broken:   "Broken - OK",
	Stolen:   "Stolen - OK",
	InRepair: "In repair - OK",
	Old:      "Old equipment - OK",
	Reserved: "Reserved - OK",
	Sold:     "Sold - OK",
	Active:   "ACTIVE - requires adjustment in the asset system",
	Unknown:  "Unknown state",
}

// Normalize maps a raw state string onto a canonical State.
// Unrecognized or empty input yields Unknown.
func Normalize(raw string) State {
	key := fold(raw)
	if key == "" {
		return Unknown
	}
	if s, ok := aliases[key]; ok {
		return s
	}
	return Unknown
}

// FromValue normalizes a loosely typed register cell. Anything that is not a
// string (including nil) yields Unknown.
func FromValue(v any) State {
	switch val := v.(type) {
	case string:
		return Normalize(val)
	case *string:
		if val == nil {
			return Unknown
		}
		return Normalize(*val)
	case []byte:
		return Normalize(string(val))
	case State:
		return Parse(string(val))
	default:
		return Unknown
	}
}

// Parse converts a canonical state name back into a State, as stored in
// persisted sessions. Non-canonical names fall back to alias normalization.
func Parse(name string) State {
	for _, s := range All {
		if string(s) == name {
			return s
		}
	}
	return Normalize(name)
}

// RequiresAdjustment reports whether an item in this state must be corrected
// in the system of record.
func (s State) RequiresAdjustment() bool {
	return s == Active
}

// IsOK reports whether the state is a known state that needs no adjustment.
func (s State) IsOK() bool {
	return s != Active && s != Unknown && s.Valid()
}

// Valid reports whether s is one of the canonical states.
func (s State) Valid() bool {
	_, ok := labels[s]
	return ok
}

// Label returns the operator-facing description of the state.
func (s State) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return labels[Unknown]
}

func (s State) String() string {
	return string(s)
}

func fold(raw string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, raw)
	if err != nil {
		stripped = raw
	}
	return strings.Join(strings.Fields(strings.ToLower(stripped)), " ")
}
