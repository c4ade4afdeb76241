package coords

// Scroll is the camera state of a view.
type Scroll struct {
	// Offset is a drag delta that has not been committed yet.
	Offset Coords `json:"offset" toml:"offset"`
	// Position is the committed camera translation in pixels.
	Position Coords `json:"position" toml:"position"`
}

// Commit folds Offset into Position and clears it.
func (s Scroll) Commit() Scroll {
	return Scroll{Position: s.Position.Add(s.Offset)}
}

// Pan returns a scroll moved by delta.
func (s Scroll) Pan(delta Coords) Scroll {
	s.Position = s.Position.Add(delta)
	return s
}
