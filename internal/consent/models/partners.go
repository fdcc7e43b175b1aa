package models

// PartnerID is the identifier the CMP uses for a partner SDK. It is distinct
// from the external partner key consumers understand.
type PartnerID string

// PartnerMapping translates one CMP partner id to an external partner key.
type PartnerMapping struct {
	From PartnerID
	To   Key
}

// PartnerMap translates CMP partner ids to external keys. The zero value is a
// valid identity map.
type PartnerMap struct {
	table map[PartnerID]Key
}

// NewPartnerMap builds a translation table. Source ids must be unique; when an
// id is repeated the last mapping wins and the id is reported in duplicates so
// callers can surface the configuration error.
func NewPartnerMap(entries ...PartnerMapping) (PartnerMap, []PartnerID) {
	table := make(map[PartnerID]Key, len(entries))
	var duplicates []PartnerID
	for _, e := range entries {
		if prev, ok := table[e.From]; ok && prev != e.To {
			duplicates = append(duplicates, e.From)
		}
		table[e.From] = e.To
	}
	return PartnerMap{table: table}, duplicates
}

// DefaultPartnerMap returns the reference CMP partner table.
func DefaultPartnerMap() PartnerMap {
	m, _ := NewPartnerMap(
		PartnerMapping{From: "reference-cmp-partner-1", To: "chartboost"},
		PartnerMapping{From: "reference-cmp-partner-2", To: "admob"},
		PartnerMapping{From: "reference-cmp-partner-3", To: "facebook"},
		PartnerMapping{From: "reference-cmp-partner-4", To: "some_other_sdk"},
	)
	return m
}

// Translate maps a CMP partner id to its external key. Unmapped ids pass
// through unchanged.
func (m PartnerMap) Translate(id PartnerID) Key {
	if k, ok := m.table[id]; ok {
		return k
	}
	return Key(id)
}

// With returns a copy of the map with the given mappings layered on top.
func (m PartnerMap) With(entries ...PartnerMapping) (PartnerMap, []PartnerID) {
	merged := make([]PartnerMapping, 0, len(m.table)+len(entries))
	for from, to := range m.table {
		merged = append(merged, PartnerMapping{From: from, To: to})
	}
	base, _ := NewPartnerMap(merged...)
	var duplicates []PartnerID
	seen := make(map[PartnerID]Key, len(entries))
	for _, e := range entries {
		if prev, ok := seen[e.From]; ok && prev != e.To {
			duplicates = append(duplicates, e.From)
		}
		seen[e.From] = e.To
		base.table[e.From] = e.To
	}
	return base, duplicates
}

// Len returns the number of explicit mappings.
func (m PartnerMap) Len() int {
	return len(m.table)
}
