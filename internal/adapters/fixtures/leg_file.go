package fixtures

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"voyage-routing-service/internal/domain"
)

// LegFile is a ports.LegSource backed by the line-oriented leg text
// format: "<origin> <destination> <DD/MM/YYYY> <HH:MM> <HH:MM> <cost>
// <carrier>", whitespace-separated, one leg per line. Unparsable lines
// are silently skipped, matching the source loader's tolerance for a
// hand-edited fixture file.
type LegFile struct {
	Path string
}

func NewLegFile(path string) *LegFile {
	return &LegFile{Path: path}
}

// LoadLegs reads every well-formed line into a domain.Leg. A line with
// the wrong field count, an unparsable cost, or a self-loop (origin ==
// destination) is skipped rather than aborting the whole load.
func (f *LegFile) LoadLegs() ([]domain.Leg, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("load legs: open %q: %w", f.Path, err)
	}
	defer file.Close()

	var legs []domain.Leg
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 7 {
			continue
		}

		fare, err := strconv.Atoi(fields[5])
		if err != nil {
			continue
		}

		leg := domain.Leg{
			Origin:        fields[0],
			Destination:   fields[1],
			Date:          domain.Date(fields[2]),
			DepartureTime: domain.Clock(fields[3]),
			ArrivalTime:   domain.Clock(fields[4]),
			Fare:          fare,
			Carrier:       fields[6],
		}
		if leg.Validate() != nil {
			continue
		}

		legs = append(legs, leg)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load legs: scan %q: %w", f.Path, err)
	}

	return legs, nil
}
