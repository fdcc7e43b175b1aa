package handler

import (
	"strings"

	dErrors "cmpref/pkg/domain-errors"
	"cmpref/pkg/validation"
)

// MutationRequest carries the source of a grant or deny.
type MutationRequest struct {
	Source string `json:"source" validate:"required,oneof=user developer"`
}

// Normalize lowercases and trims the source.
func (r *MutationRequest) Normalize() {
	if r == nil {
		return
	}
	r.Source = strings.ToLower(strings.TrimSpace(r.Source))
}

// Validate checks that the request is well-formed.
func (r *MutationRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}

// DialogRequest asks for a consent dialog. An empty or unknown dialog type
// falls back to the adapter default.
type DialogRequest struct {
	DialogType string `json:"dialog_type" validate:"max=32"`
	Anchor     string `json:"anchor,omitempty" validate:"max=256"`
}

// Normalize lowercases and trims the dialog type.
func (r *DialogRequest) Normalize() {
	if r == nil {
		return
	}
	r.DialogType = strings.ToLower(strings.TrimSpace(r.DialogType))
	r.Anchor = strings.TrimSpace(r.Anchor)
}

// Validate checks that the request is well-formed.
func (r *DialogRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}
