package services

import "voyage-routing-service/internal/domain"

// layoverChargeThresholdHours is the strict threshold above which a
// layover incurs a port charge.
const layoverChargeThresholdHours = 12

// hoursPerDay is used to round a layover up to whole charged days.
const hoursPerDay = 24

// evaluateLayover computes the layover hours and resulting port charge
// between an arriving leg and a departing leg at the port they share.
func evaluateLayover(port domain.Port, arriving, departing domain.Leg) (hours, charge int) {
	hours = domain.LayoverHours(arriving, departing)
	if hours <= layoverChargeThresholdHours {
		return hours, 0
	}

	days := (hours + hoursPerDay - 1) / hoursPerDay
	if days < 1 {
		days = 1
	}
	return hours, days * port.DailyCharge
}

// buildLayovers reconstructs the layover list for a leg sequence,
// recomputing hours/charge from the calendar and cost model rather than
// trusting any per-vertex search state.
func buildLayovers(graph *domain.Graph, legs []domain.Leg) []domain.Layover {
	if len(legs) < 2 {
		return nil
	}

	layovers := make([]domain.Layover, 0, len(legs)-1)
	for i := 0; i < len(legs)-1; i++ {
		arriving := legs[i]
		departing := legs[i+1]

		port, _ := graph.Port(arriving.Destination)
		hours, charge := evaluateLayover(port, arriving, departing)

		layovers = append(layovers, domain.Layover{
			Port:        arriving.Destination,
			Hours:       hours,
			PortCharge:  charge,
			ArrivalDate: arriving.Date,
			ArrivalTime: arriving.ArrivalTime,
			DepartDate:  departing.Date,
			DepartTime:  departing.DepartureTime,
		})
	}
	return layovers
}
