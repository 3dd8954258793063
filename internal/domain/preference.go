package domain

// PreferenceFilter bundles the optional predicates a query may apply.
// A zero-value PreferenceFilter is fully inactive.
type PreferenceFilter struct {
	Carriers       map[string]struct{} // nil/empty = no carrier restriction
	RequiredPorts  map[string]struct{} // nil/empty = no required-port check
	ExcludedPorts  map[string]struct{} // nil/empty = no excluded-port check
	MaxVoyageHours int                 // <= 0 means "no limit"
}

// HasCarrierWhitelist reports whether a carrier restriction is active.
func (f *PreferenceFilter) HasCarrierWhitelist() bool {
	return f != nil && len(f.Carriers) > 0
}

// HasExcludedPorts reports whether an excluded-port restriction is active.
func (f *PreferenceFilter) HasExcludedPorts() bool {
	return f != nil && len(f.ExcludedPorts) > 0
}

// HasRequiredPorts reports whether a required-port restriction is active.
func (f *PreferenceFilter) HasRequiredPorts() bool {
	return f != nil && len(f.RequiredPorts) > 0
}

// HasMaxVoyageHours reports whether a voyage duration cap is active.
func (f *PreferenceFilter) HasMaxVoyageHours() bool {
	return f != nil && f.MaxVoyageHours > 0
}

// MatchesLeg reports whether leg satisfies the carrier and excluded-port
// predicates. Required-port and max-duration are path-level checks,
// evaluated separately after reconstruction (see MatchesPath).
func (f *PreferenceFilter) MatchesLeg(leg Leg) bool {
	if f == nil {
		return true
	}

	if f.HasCarrierWhitelist() {
		if _, ok := f.Carriers[leg.Carrier]; !ok {
			return false
		}
	}

	if f.HasExcludedPorts() {
		if _, ok := f.ExcludedPorts[leg.Origin]; ok {
			return false
		}
		if _, ok := f.ExcludedPorts[leg.Destination]; ok {
			return false
		}
	}

	return true
}

// MatchesPath checks the soft constraints (required ports, max voyage
// duration) against a fully reconstructed path. Violations are reported
// as warnings by the caller, not as a failure to find a path.
func (f *PreferenceFilter) MatchesPath(path []string, totalHours int) (warnings []string) {
	if f == nil {
		return nil
	}

	if f.HasRequiredPorts() {
		present := make(map[string]struct{}, len(path))
		for _, p := range path {
			present[p] = struct{}{}
		}
		for required := range f.RequiredPorts {
			if _, ok := present[required]; !ok {
				warnings = append(warnings, "required port not visited: "+required)
			}
		}
	}

	if f.HasMaxVoyageHours() && totalHours > f.MaxVoyageHours {
		warnings = append(warnings, "voyage duration exceeds configured maximum")
	}

	return warnings
}
