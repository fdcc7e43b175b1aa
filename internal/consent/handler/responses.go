package handler

import (
	"time"

	"cmpref/internal/audit"
)

// ModuleResponse identifies the adapter module.
type ModuleResponse struct {
	ModuleID      string `json:"module_id"`
	ModuleVersion string `json:"module_version"`
}

// ConsentsResponse is the current consent snapshot.
type ConsentsResponse struct {
	Consents             map[string]string `json:"consents"`
	ShouldCollectConsent bool              `json:"should_collect_consent"`
}

type ShouldCollectResponse struct {
	ShouldCollectConsent bool `json:"should_collect_consent"`
}

// OperationResponse reports a mutation outcome with the resulting snapshot.
type OperationResponse struct {
	Succeeded            bool              `json:"succeeded"`
	Consents             map[string]string `json:"consents"`
	ShouldCollectConsent bool              `json:"should_collect_consent"`
}

type DialogResponse struct {
	Presented bool `json:"presented"`
}

// ChangeItem is one entry of the consent change feed.
type ChangeItem struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Key       string    `json:"key,omitempty"`
	Value     string    `json:"value,omitempty"`
	Source    string    `json:"source,omitempty"`
	Succeeded bool      `json:"succeeded"`
}

type ChangesResponse struct {
	Changes []ChangeItem `json:"changes"`
}

func toChangesResponse(events []audit.Event) ChangesResponse {
	items := make([]ChangeItem, 0, len(events))
	for _, e := range events {
		items = append(items, ChangeItem{
			ID:        e.ID.String(),
			Timestamp: e.Timestamp,
			Action:    e.Action,
			Key:       e.Key,
			Value:     e.Value,
			Source:    e.Source,
			Succeeded: e.Succeeded,
		})
	}
	return ChangesResponse{Changes: items}
}
