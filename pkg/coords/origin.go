package coords

import (
	"fmt"
	"strings"
)

// Origin selects which point of a tile's diamond a projected coordinate refers to.
type Origin int

const (
	OriginCenter Origin = iota
	OriginTop
	OriginBottom
	OriginLeft
	OriginRight
)

var originNames = [...]string{
	OriginCenter: "center",
	OriginTop:    "top",
	OriginBottom: "bottom",
	OriginLeft:   "left",
	OriginRight:  "right",
}

// Origins lists every anchor in declaration order.
var Origins = []Origin{OriginCenter, OriginTop, OriginBottom, OriginLeft, OriginRight}

func (o Origin) String() string {
	if o < 0 || int(o) >= len(originNames) {
		return fmt.Sprintf("Origin(%d)", int(o))
	}
	return originNames[o]
}

// Valid reports whether o is one of the declared anchors.
func (o Origin) Valid() bool {
	return o >= 0 && int(o) < len(originNames)
}

// ParseOrigin accepts the lowercase or uppercase anchor name. The empty
// string selects [OriginCenter].
func ParseOrigin(s string) (Origin, error) {
	if s == "" {
		return OriginCenter, nil
	}
	for i, name := range originNames {
		if strings.EqualFold(s, name) {
			return Origin(i), nil
		}
	}
	return OriginCenter, fmt.Errorf("unknown tile origin %q (must be one of: center, top, bottom, left, right)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (o Origin) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("invalid tile origin %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Origin) UnmarshalText(text []byte) error {
	v, err := ParseOrigin(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
