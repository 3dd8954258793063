package cache

import (
	"encoding/json"
	"fmt"

	"voyage-routing-service/internal/domain"
)

// wireLeg and wireResult give domain.PathResult a JSON-tagged shadow
// for cache storage, keeping json tags off the domain types themselves.
type wireLeg struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Date          string `json:"date"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Fare          int    `json:"fare"`
	Carrier       string `json:"carrier"`
}

type wireLayover struct {
	Port        string `json:"port"`
	Hours       int    `json:"hours"`
	PortCharge  int    `json:"port_charge"`
	ArrivalDate string `json:"arrival_date"`
	ArrivalTime string `json:"arrival_time"`
	DepartDate  string `json:"depart_date"`
	DepartTime  string `json:"depart_time"`
}

type wireResult struct {
	Found      bool          `json:"found"`
	Path       []string      `json:"path"`
	Legs       []wireLeg     `json:"legs"`
	Layovers   []wireLayover `json:"layovers"`
	TotalCost  int           `json:"total_cost"`
	TotalHours int           `json:"total_hours"`
	Diagnostic string        `json:"diagnostic"`
	Warnings   []string      `json:"warnings"`
}

func encodeResult(r domain.PathResult) ([]byte, error) {
	w := wireResult{
		Found:      r.Found,
		Path:       r.Path,
		TotalCost:  r.TotalCost,
		TotalHours: r.TotalHours,
		Diagnostic: r.Diagnostic,
		Warnings:   r.Warnings,
	}
	for _, l := range r.Legs {
		w.Legs = append(w.Legs, wireLeg{
			Origin:        l.Origin,
			Destination:   l.Destination,
			Date:          string(l.Date),
			DepartureTime: string(l.DepartureTime),
			ArrivalTime:   string(l.ArrivalTime),
			Fare:          l.Fare,
			Carrier:       l.Carrier,
		})
	}
	for _, lo := range r.Layovers {
		w.Layovers = append(w.Layovers, wireLayover{
			Port:        lo.Port,
			Hours:       lo.Hours,
			PortCharge:  lo.PortCharge,
			ArrivalDate: string(lo.ArrivalDate),
			ArrivalTime: string(lo.ArrivalTime),
			DepartDate:  string(lo.DepartDate),
			DepartTime:  string(lo.DepartTime),
		})
	}

	b, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("cache: encode path result: %w", err)
	}
	return b, nil
}

func decodeResult(b []byte) (domain.PathResult, error) {
	var w wireResult
	if err := json.Unmarshal(b, &w); err != nil {
		return domain.PathResult{}, fmt.Errorf("cache: decode path result: %w", err)
	}

	r := domain.PathResult{
		Found:      w.Found,
		Path:       w.Path,
		TotalCost:  w.TotalCost,
		TotalHours: w.TotalHours,
		Diagnostic: w.Diagnostic,
		Warnings:   w.Warnings,
	}
	for _, l := range w.Legs {
		r.Legs = append(r.Legs, domain.Leg{
			Origin:        l.Origin,
			Destination:   l.Destination,
			Date:          domain.Date(l.Date),
			DepartureTime: domain.Clock(l.DepartureTime),
			ArrivalTime:   domain.Clock(l.ArrivalTime),
			Fare:          l.Fare,
			Carrier:       l.Carrier,
		})
	}
	for _, lo := range w.Layovers {
		r.Layovers = append(r.Layovers, domain.Layover{
			Port:        lo.Port,
			Hours:       lo.Hours,
			PortCharge:  lo.PortCharge,
			ArrivalDate: domain.Date(lo.ArrivalDate),
			ArrivalTime: domain.Clock(lo.ArrivalTime),
			DepartDate:  domain.Date(lo.DepartDate),
			DepartTime:  domain.Clock(lo.DepartTime),
		})
	}

	return r, nil
}
