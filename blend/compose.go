package blend

import "fmt"

// Op is a Porter-Duff compositing operator.
type Op uint8

const (
	OpClear           Op = iota // (0, 0)
	OpCopy                      // (1, 0)
	OpDestination               // (0, 1)
	OpSourceOver                // (1, 1-Fa)
	OpDestinationOver           // (1-Ba, 1)
	OpSourceIn                  // (Ba, 0)
	OpDestinationIn             // (0, Fa)
	OpSourceOut                 // (1-Ba, 0)
	OpDestinationOut            // (0, 1-Fa)
	OpSourceAtop                // (Ba, 1-Fa)
	OpDestinationAtop           // (1-Ba, Fa)
	OpXor                       // (1-Ba, 1-Fa)
	OpLighter                   // (1, 1)

	opCount
)

// DefaultOp is the operator used when a caller does not pick one.
const DefaultOp = OpLighter

var opNames = [opCount]string{
	OpClear:           "Clear",
	OpCopy:            "Copy",
	OpDestination:     "Destination",
	OpSourceOver:      "SourceOver",
	OpDestinationOver: "DestinationOver",
	OpSourceIn:        "SourceIn",
	OpDestinationIn:   "DestinationIn",
	OpSourceOut:       "SourceOut",
	OpDestinationOut:  "DestinationOut",
	OpSourceAtop:      "SourceAtop",
	OpDestinationAtop: "DestinationAtop",
	OpXor:             "Xor",
	OpLighter:         "Lighter",
}

// Compose returns the coefficients applied to the front and back colours
// given the front alpha fa and the back alpha ba. Unknown operators behave
// like OpLighter.
func (o Op) Compose(fa, ba float32) (float32, float32) {
	switch o {
	case OpClear:
		return 0, 0
	case OpCopy:
		return 1, 0
	case OpDestination:
		return 0, 1
	case OpSourceOver:
		return 1, 1 - fa
	case OpDestinationOver:
		return 1 - ba, 1
	case OpSourceIn:
		return ba, 0
	case OpDestinationIn:
		return 0, fa
	case OpSourceOut:
		return 1 - ba, 0
	case OpDestinationOut:
		return 0, 1 - fa
	case OpSourceAtop:
		return ba, 1 - fa
	case OpDestinationAtop:
		return 1 - ba, fa
	case OpXor:
		return 1 - ba, 1 - fa
	default:
		return 1, 1
	}
}

// Valid reports whether o is a known operator.
func (o Op) Valid() bool {
	return o < opCount
}

// String returns the operator name.
func (o Op) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
	return opNames[o]
}

// MarshalText implements encoding.TextMarshaler.
func (o Op) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("blend: invalid op %d", uint8(o))
	}
	return []byte(opNames[o]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Op) UnmarshalText(text []byte) error {
	v, err := ParseOp(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// ParseOp looks up an operator by name, ignoring case, dashes and
// underscores. "src-over" style abbreviations are not accepted.
func ParseOp(name string) (Op, error) {
	key := normalizeName(name)
	for i, n := range opNames {
		if normalizeName(n) == key {
			return Op(i), nil
		}
	}
	return DefaultOp, fmt.Errorf("blend: unknown op %q", name)
}
