package adapter

import (
	"sync/atomic"

	"github.com/google/uuid"

	"cmpref/internal/consent/cmp"
	"cmpref/internal/consent/models"
)

// Notification kinds, used as metric labels.
const (
	kindStandard = "standard"
	kindPartner  = "partner"
	kindIAB      = "iab"
)

// DelegateHandle is the registration token returned by SetDelegate. The adapter
// keeps no claim on the delegate beyond the handle: once the host releases it,
// or registers another delegate, notifications are silently dropped.
type DelegateHandle struct {
	id       uuid.UUID
	delegate Delegate
	released atomic.Bool
}

// ID returns the registration identifier.
func (h *DelegateHandle) ID() uuid.UUID {
	return h.id
}

// Release ends the registration. Releasing twice is a no-op.
func (h *DelegateHandle) Release() {
	if h != nil {
		h.released.Store(true)
	}
}

// Active reports whether the handle still delivers notifications.
func (h *DelegateHandle) Active() bool {
	return h != nil && !h.released.Load()
}

// SetDelegate registers the single delegate notified about consent changes.
// Any previous registration is released. A nil delegate clears the slot.
func (a *Adapter) SetDelegate(d Delegate) *DelegateHandle {
	if d == nil {
		a.ClearDelegate()
		return nil
	}
	h := &DelegateHandle{id: uuid.New(), delegate: d}
	a.delegateMu.Lock()
	prev := a.delegate
	a.delegate = h
	a.delegateMu.Unlock()
	prev.Release()
	return h
}

// ClearDelegate empties the delegate slot.
func (a *Adapter) ClearDelegate() {
	a.delegateMu.Lock()
	prev := a.delegate
	a.delegate = nil
	a.delegateMu.Unlock()
	prev.Release()
}

// storeObserver receives CMP change sets and forwards them to the delegate.
type storeObserver struct {
	adapter *Adapter
}

func (o storeObserver) ConsentChanged(changes cmp.ChangeSet) {
	for _, key := range changes.Standard {
		o.adapter.notify(key, kindStandard)
	}
	for _, id := range changes.Partners {
		o.adapter.notify(o.adapter.partners.Translate(id), kindPartner)
	}
}

func (a *Adapter) notify(key models.Key, kind string) {
	a.delegateMu.RLock()
	h := a.delegate
	a.delegateMu.RUnlock()

	switch {
	case h == nil:
		a.incrementNotificationDropped("no_delegate")
		return
	case !h.Active():
		a.incrementNotificationDropped("released")
		return
	}

	defer func() {
		if r := recover(); r != nil {
			a.incrementNotificationDropped("delegate_panic")
			if a.logger != nil {
				a.logger.Error("consent delegate panicked",
					"key", key,
					"panic", r,
				)
			}
		}
	}()
	h.delegate.OnConsentChange(key)
	a.incrementNotificationSent(kind)
}
