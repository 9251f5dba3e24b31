package sand

// Stats counts what happened during the most recent tick.
type Stats struct {
	Tick      uint64
	Processed int

	Moves        int
	Ignitions    int
	Melts        int
	Emitted      int
	Extinguished int
	Drips        int
}

// Reactions sums the events that change a cell's material in place.
func (s Stats) Reactions() int {
	return s.Ignitions + s.Melts + s.Emitted + s.Extinguished
}
