package domain

// Port is a named node in the network. Identity is the case-sensitive
// name; it is created at graph load and never mutated afterward.
type Port struct {
	Name string

	// DailyCharge is levied per day (ceil) on layovers strictly over 12h.
	DailyCharge int

	// DisplayLat/DisplayLon are advisory map-rendering coordinates. The
	// routing core never reads them.
	DisplayLat float64
	DisplayLon float64
}
