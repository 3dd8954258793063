package dto

// PreferenceRequest mirrors domain.PreferenceFilter in wire form: plain
// slices instead of sets, so a client never has to serialize a Go map.
type PreferenceRequest struct {
	Carriers       []string `json:"carriers,omitempty"`
	RequiredPorts  []string `json:"required_ports,omitempty"`
	ExcludedPorts  []string `json:"excluded_ports,omitempty"`
	MaxVoyageHours int      `json:"max_voyage_hours,omitempty"`
}

// CheapestRequest is the body for POST /routes/cheapest and
// POST /routes/shortest.
type CheapestRequest struct {
	Origin      string             `json:"origin"`
	Destination string             `json:"destination"`
	Date        string             `json:"date"`
	Preferences *PreferenceRequest `json:"preferences,omitempty"`
}

// BidirectionalRequest is the body for POST /routes/cheapest/bidirectional.
type BidirectionalRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

// MultiLegRequest is the body for POST /routes/multi-leg.
type MultiLegRequest struct {
	Origin        string   `json:"origin"`
	Intermediates []string `json:"intermediates"`
	Destination   string   `json:"destination"`
	Date          string   `json:"date"`
}

// LayoverResponse mirrors domain.Layover for the wire.
type LayoverResponse struct {
	Port        string `json:"port"`
	Hours       int    `json:"hours"`
	PortCharge  int    `json:"port_charge"`
	ArrivalDate string `json:"arrival_date"`
	ArrivalTime string `json:"arrival_time"`
	DepartDate  string `json:"depart_date"`
	DepartTime  string `json:"depart_time"`
}

// LegResponse mirrors domain.Leg for the wire.
type LegResponse struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Date          string `json:"date"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Fare          int    `json:"fare"`
	Carrier       string `json:"carrier"`
}

// PathResultResponse mirrors domain.PathResult for the wire.
type PathResultResponse struct {
	Found      bool              `json:"found"`
	Path       []string          `json:"path,omitempty"`
	Legs       []LegResponse     `json:"legs,omitempty"`
	Layovers   []LayoverResponse `json:"layovers,omitempty"`
	TotalCost  int               `json:"total_cost,omitempty"`
	TotalHours int               `json:"total_hours,omitempty"`
	Diagnostic string            `json:"diagnostic,omitempty"`
	Warnings   []string          `json:"warnings,omitempty"`
}

// EnumerateResponse is the body for GET /routes/enumerate.
type EnumerateResponse struct {
	Paths [][]string `json:"paths"`
}

// ConnectingLegsResponse is the body for GET /routes/connecting.
type ConnectingLegsResponse struct {
	Legs []LegResponse `json:"legs"`
}
