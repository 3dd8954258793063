package domain

// PortIndexMap is a disposable bijection between port names and a dense
// integer range [0, N), built fresh for a single query so algorithm
// state can live in plain slices instead of maps. Port indices are
// handles only; the port name remains the authoritative identity.
type PortIndexMap struct {
	nameToIndex map[string]int
	indexToName []string
}

// NewPortIndexMap builds an index map over the given port names,
// assigning indices in the order given.
func NewPortIndexMap(names []string) *PortIndexMap {
	m := &PortIndexMap{
		nameToIndex: make(map[string]int, len(names)),
		indexToName: make([]string, 0, len(names)),
	}
	for _, n := range names {
		m.add(n)
	}
	return m
}

func (m *PortIndexMap) add(name string) int {
	if idx, ok := m.nameToIndex[name]; ok {
		return idx
	}
	idx := len(m.indexToName)
	m.nameToIndex[name] = idx
	m.indexToName = append(m.indexToName, name)
	return idx
}

// Index returns the dense index for a port name, or -1 if unknown.
func (m *PortIndexMap) Index(name string) int {
	if idx, ok := m.nameToIndex[name]; ok {
		return idx
	}
	return -1
}

// Name returns the port name for a dense index, or "" if out of range.
func (m *PortIndexMap) Name(idx int) string {
	if idx < 0 || idx >= len(m.indexToName) {
		return ""
	}
	return m.indexToName[idx]
}

// Len returns the number of ports mapped.
func (m *PortIndexMap) Len() int {
	return len(m.indexToName)
}
