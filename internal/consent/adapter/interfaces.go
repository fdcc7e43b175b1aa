package adapter

import (
	"context"

	"cmpref/internal/consent/cmp"
	"cmpref/internal/consent/models"
)

// Backend is the CMP the adapter wraps. Only reads and change subscription are
// required; mutations are optional capabilities (Granter, Denier, Resetter).
type Backend interface {
	Initialize(ctx context.Context) error
	ShouldCollectConsent() bool
	Snapshot() cmp.State
	Subscribe(observer cmp.Observer) *cmp.Subscription
}

// Granter is implemented by CMPs that accept an explicit grant.
type Granter interface {
	GrantAll()
}

// Denier is implemented by CMPs that accept an explicit denial.
type Denier interface {
	DenyAll()
}

// Resetter is implemented by CMPs that can forget the recorded decision.
type Resetter interface {
	Reset()
}

// MutableBackend is a CMP supporting every mutation.
type MutableBackend interface {
	Backend
	Granter
	Denier
	Resetter
}

// DialogPresenter shows CMP dialogs on the host UI surface. Present returns as
// soon as the dialog is on screen; the user's choice arrives later through the
// change notification channel.
type DialogPresenter interface {
	Present(ctx context.Context, dialogType models.DialogType, anchor any) error
}

// Delegate is the host-side receiver of consent change notifications.
type Delegate interface {
	OnConsentChange(key models.Key)
}

// DelegateFunc adapts a function to the Delegate interface.
type DelegateFunc func(key models.Key)

func (f DelegateFunc) OnConsentChange(key models.Key) { f(key) }

// Completion reports whether an operation went through.
type Completion func(succeeded bool)

var _ MutableBackend = (*cmp.Store)(nil)
