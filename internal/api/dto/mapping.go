package dto

import "voyage-routing-service/internal/domain"

// FromPathResult maps a domain.PathResult to its wire representation.
func FromPathResult(r domain.PathResult) PathResultResponse {
	legs := make([]LegResponse, len(r.Legs))
	for i, l := range r.Legs {
		legs[i] = LegResponse{
			Origin:        l.Origin,
			Destination:   l.Destination,
			Date:          string(l.Date),
			DepartureTime: string(l.DepartureTime),
			ArrivalTime:   string(l.ArrivalTime),
			Fare:          l.Fare,
			Carrier:       l.Carrier,
		}
	}

	layovers := make([]LayoverResponse, len(r.Layovers))
	for i, lo := range r.Layovers {
		layovers[i] = LayoverResponse{
			Port:        lo.Port,
			Hours:       lo.Hours,
			PortCharge:  lo.PortCharge,
			ArrivalDate: string(lo.ArrivalDate),
			ArrivalTime: string(lo.ArrivalTime),
			DepartDate:  string(lo.DepartDate),
			DepartTime:  string(lo.DepartTime),
		}
	}

	return PathResultResponse{
		Found:      r.Found,
		Path:       r.Path,
		Legs:       legs,
		Layovers:   layovers,
		TotalCost:  r.TotalCost,
		TotalHours: r.TotalHours,
		Diagnostic: r.Diagnostic,
		Warnings:   r.Warnings,
	}
}

// FromLegs maps a slice of domain.Leg to its wire representation.
func FromLegs(legs []domain.Leg) []LegResponse {
	out := make([]LegResponse, len(legs))
	for i, l := range legs {
		out[i] = LegResponse{
			Origin:        l.Origin,
			Destination:   l.Destination,
			Date:          string(l.Date),
			DepartureTime: string(l.DepartureTime),
			ArrivalTime:   string(l.ArrivalTime),
			Fare:          l.Fare,
			Carrier:       l.Carrier,
		}
	}
	return out
}

// ToPreferenceFilter maps the wire preference request to a domain
// filter, or nil if the request itself is nil.
func ToPreferenceFilter(req *PreferenceRequest) *domain.PreferenceFilter {
	if req == nil {
		return nil
	}

	f := &domain.PreferenceFilter{MaxVoyageHours: req.MaxVoyageHours}
	if len(req.Carriers) > 0 {
		f.Carriers = make(map[string]struct{}, len(req.Carriers))
		for _, c := range req.Carriers {
			f.Carriers[c] = struct{}{}
		}
	}
	if len(req.RequiredPorts) > 0 {
		f.RequiredPorts = make(map[string]struct{}, len(req.RequiredPorts))
		for _, p := range req.RequiredPorts {
			f.RequiredPorts[p] = struct{}{}
		}
	}
	if len(req.ExcludedPorts) > 0 {
		f.ExcludedPorts = make(map[string]struct{}, len(req.ExcludedPorts))
		for _, p := range req.ExcludedPorts {
			f.ExcludedPorts[p] = struct{}{}
		}
	}
	return f
}
