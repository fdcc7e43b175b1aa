package cmp

import (
	"maps"

	"cmpref/internal/consent/models"
)

// State is the consent information held by the reference CMP.
type State struct {
	// ShouldCollectConsent is true while no consent decision is recorded.
	ShouldCollectConsent bool
	CCPAOptIn            bool
	GDPRConsentGiven     bool
	// Partners holds partner-specific signals keyed by CMP partner id.
	Partners map[models.PartnerID]bool
}

// DefaultState returns the state the reference CMP starts with.
func DefaultState() State {
	return State{
		ShouldCollectConsent: false,
		CCPAOptIn:            true,
		GDPRConsentGiven:     true,
		Partners: map[models.PartnerID]bool{
			"reference-cmp-partner-1": true,
			"reference-cmp-partner-2": false,
			"reference-cmp-partner-3": true,
			"reference-cmp-partner-4": false,
		},
	}
}

// Clone returns a deep copy so callers never alias the store's partner map.
func (s State) Clone() State {
	out := s
	out.Partners = maps.Clone(s.Partners)
	if out.Partners == nil {
		out.Partners = make(map[models.PartnerID]bool)
	}
	return out
}

// Standard returns the value of a tracked boolean standard.
func (s State) Standard(key models.Key) (bool, bool) {
	switch key {
	case models.KeyCCPAOptIn:
		return s.CCPAOptIn, true
	case models.KeyGDPRConsentGiven:
		return s.GDPRConsentGiven, true
	}
	return false, false
}

func (s *State) setStandard(key models.Key, v bool) {
	switch key {
	case models.KeyCCPAOptIn:
		s.CCPAOptIn = v
	case models.KeyGDPRConsentGiven:
		s.GDPRConsentGiven = v
	}
}

// ChangeSet lists the CMP-side keys touched by one mutation.
type ChangeSet struct {
	Standard []models.Key
	Partners []models.PartnerID
}

// IsEmpty reports whether nothing changed.
func (c ChangeSet) IsEmpty() bool {
	return len(c.Standard) == 0 && len(c.Partners) == 0
}

// Len returns the number of changed keys.
func (c ChangeSet) Len() int {
	return len(c.Standard) + len(c.Partners)
}
