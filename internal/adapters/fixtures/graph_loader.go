package fixtures

import (
	"voyage-routing-service/internal/domain"
	"voyage-routing-service/internal/ports"
)

// LoadGraph builds a Graph from a leg source and a port-charge source.
// Every port named by a charge entry is registered first so fares can
// resolve to a non-zero daily charge; ports that only ever appear as a
// leg origin or destination default to a charge of 0, matching the
// fixture contract that an unlisted port has no charge.
func LoadGraph(legSource ports.LegSource, chargeSource ports.PortChargeSource) (*domain.Graph, error) {
	charges, err := chargeSource.LoadPortCharges()
	if err != nil {
		return nil, err
	}

	legs, err := legSource.LoadLegs()
	if err != nil {
		return nil, err
	}

	graph := domain.NewGraph()
	for name, entry := range charges {
		graph.AddPort(domain.Port{
			Name:        name,
			DailyCharge: entry.DailyCharge,
			DisplayLat:  entry.DisplayLat,
			DisplayLon:  entry.DisplayLon,
		})
	}
	for _, leg := range legs {
		graph.AddPort(domain.Port{Name: leg.Origin, DailyCharge: 0})
		graph.AddPort(domain.Port{Name: leg.Destination, DailyCharge: 0})
		graph.AddLeg(leg)
	}

	return graph, nil
}
