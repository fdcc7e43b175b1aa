package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"cmpref/internal/audit"
	"cmpref/internal/consent/adapter/mocks"
	"cmpref/internal/consent/cmp"
	"cmpref/internal/consent/iab"
	"cmpref/internal/consent/metrics"
	"cmpref/internal/consent/models"
	dErrors "cmpref/pkg/domain-errors"
	"cmpref/pkg/testutil"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks Backend,MutableBackend,DialogPresenter,Delegate

type AdapterSuite struct {
	suite.Suite
	ctx    context.Context
	logger *slog.Logger
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterSuite))
}

func (s *AdapterSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recorder collects delegate notifications in arrival order.
type recorder struct {
	mu   sync.Mutex
	keys []models.Key
}

func (r *recorder) OnConsentChange(key models.Key) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, key)
}

func (r *recorder) Keys() []models.Key {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Key(nil), r.keys...)
}

// completionSpy records the completion outcome and how often it ran.
type completionSpy struct {
	calls     int
	succeeded bool
}

func (c *completionSpy) fn() Completion {
	return func(ok bool) {
		c.calls++
		c.succeeded = ok
	}
}

type failingSource struct{}

func (failingSource) Strings(context.Context) (map[models.Key]string, error) {
	return nil, errors.New("connection refused")
}

func (failingSource) Watch(ctx context.Context, _ func(models.Key)) error {
	<-ctx.Done()
	return nil
}

func stateWith(ccpa, gdpr bool, partners map[models.PartnerID]bool) cmp.State {
	return cmp.State{CCPAOptIn: ccpa, GDPRConsentGiven: gdpr, Partners: partners}
}

func (s *AdapterSuite) newAdapter(store *cmp.Store, cfg Config, opts ...Option) *Adapter {
	opts = append([]Option{WithLogger(s.logger)}, opts...)
	a := New(store, cmp.NewDemoPresenter(store), cfg, opts...)
	s.T().Cleanup(a.Close)
	return a
}

func (s *AdapterSuite) TestIdentity() {
	a := s.newAdapter(cmp.New(cmp.DefaultState()), DefaultConfig())
	id, version := a.Identity()
	s.Equal("reference", id)
	s.Equal("1.1.0.0.0", version)
	s.Equal(id, a.ModuleID())
	s.Equal(version, a.ModuleVersion())
}

func (s *AdapterSuite) TestDenyConsent() {
	s.T().Run("denies every standard and notifies both keys", func(t *testing.T) {
		store := cmp.New(stateWith(true, true, nil))
		a := s.newAdapter(store, DefaultConfig())
		rec := &recorder{}
		a.SetDelegate(rec)
		spy := &completionSpy{}

		err := a.DenyConsent(s.ctx, models.SourceUser, spy.fn())

		require.NoError(t, err)
		assert.Equal(t, 1, spy.calls)
		assert.True(t, spy.succeeded)
		snapshot := a.Consents(s.ctx)
		assert.Equal(t, models.ValueDenied, snapshot[models.KeyCCPAOptIn])
		assert.Equal(t, models.ValueDenied, snapshot[models.KeyGDPRConsentGiven])
		assert.ElementsMatch(t, []models.Key{models.KeyCCPAOptIn, models.KeyGDPRConsentGiven}, rec.Keys())
		assert.False(t, a.ShouldCollectConsent())
	})

	s.T().Run("notifies even when values did not move", func(t *testing.T) {
		store := cmp.New(stateWith(false, false, nil))
		a := s.newAdapter(store, DefaultConfig())
		rec := &recorder{}
		a.SetDelegate(rec)

		require.NoError(t, a.DenyConsent(s.ctx, models.SourceDeveloper, nil))
		assert.Len(t, rec.Keys(), 2)
	})
}

func (s *AdapterSuite) TestGrantConsent() {
	store := cmp.New(stateWith(false, false, nil))
	a := s.newAdapter(store, DefaultConfig())
	spy := &completionSpy{}

	require.NoError(s.T(), a.GrantConsent(s.ctx, models.SourceDeveloper, spy.fn()))

	s.True(spy.succeeded)
	snapshot := a.Consents(s.ctx)
	s.Equal(models.ValueGranted, snapshot[models.KeyCCPAOptIn])
	s.Equal(models.ValueGranted, snapshot[models.KeyGDPRConsentGiven])
}

func (s *AdapterSuite) TestResetConsent() {
	for _, initial := range []bool{true, false} {
		s.T().Run(fmt.Sprintf("from granted=%t", initial), func(t *testing.T) {
			store := cmp.New(stateWith(initial, initial, nil))
			a := s.newAdapter(store, DefaultConfig())
			spy := &completionSpy{}

			require.NoError(t, a.ResetConsent(s.ctx, spy.fn()))

			assert.True(t, spy.succeeded)
			snapshot := a.Consents(s.ctx)
			assert.Equal(t, models.ValueDenied, snapshot[models.KeyCCPAOptIn])
			assert.Equal(t, models.ValueDenied, snapshot[models.KeyGDPRConsentGiven])
			assert.True(t, a.ShouldCollectConsent())
		})
	}
}

func (s *AdapterSuite) TestConsentsPartnerTranslation() {
	s.T().Run("mapped partners use the external key, unmapped pass through", func(t *testing.T) {
		store := cmp.New(stateWith(true, true, map[models.PartnerID]bool{"p1": true, "p2": false}))
		a := s.newAdapter(store, Config{PartnerIDMap: map[string]string{"p1": "chartboost"}})

		snapshot := a.Consents(s.ctx)

		assert.Equal(t, models.ValueGranted, snapshot["chartboost"])
		assert.Equal(t, models.ValueDenied, snapshot["p2"])
		assert.NotContains(t, snapshot, models.Key("p1"))
		assert.Len(t, snapshot, 4)
	})

	s.T().Run("default table translates reference partner ids", func(t *testing.T) {
		a := s.newAdapter(cmp.New(cmp.DefaultState()), DefaultConfig())

		snapshot := a.Consents(s.ctx)

		assert.Equal(t, models.Snapshot{
			models.KeyCCPAOptIn:        models.ValueGranted,
			models.KeyGDPRConsentGiven: models.ValueGranted,
			"chartboost":               models.ValueGranted,
			"admob":                    models.ValueDenied,
			"facebook":                 models.ValueGranted,
			"some_other_sdk":           models.ValueDenied,
		}, snapshot)
	})

	s.T().Run("explicit mappings override config", func(t *testing.T) {
		store := cmp.New(stateWith(true, true, map[models.PartnerID]bool{"p1": true}))
		a := s.newAdapter(store, Config{PartnerIDMap: map[string]string{"p1": "chartboost"}},
			WithPartnerMappings(models.PartnerMapping{From: "p1", To: "vungle"}),
		)

		snapshot := a.Consents(s.ctx)
		assert.Equal(t, models.ValueGranted, snapshot["vungle"])
		assert.NotContains(t, snapshot, models.Key("chartboost"))
	})

	s.T().Run("snapshot is rebuilt on every read", func(t *testing.T) {
		store := cmp.New(stateWith(true, true, nil))
		a := s.newAdapter(store, DefaultConfig())

		first := a.Consents(s.ctx)
		store.DenyAll()
		second := a.Consents(s.ctx)

		assert.Equal(t, models.ValueGranted, first[models.KeyCCPAOptIn])
		assert.Equal(t, models.ValueDenied, second[models.KeyCCPAOptIn])
	})
}

func (s *AdapterSuite) TestConsentsIABLayer() {
	s.T().Run("iab strings are included", func(t *testing.T) {
		src := iab.NewMemorySource()
		require.NoError(t, src.Set(s.ctx, models.KeyTCF, "CPXxRfAPXxRfAAfKABENB-CgAAAAAAAAAAYgAAAAAAAA"))
		a := s.newAdapter(cmp.New(stateWith(true, false, nil)), DefaultConfig(), WithIABSource(src))

		snapshot := a.Consents(s.ctx)

		assert.Equal(t, models.Value("CPXxRfAPXxRfAAfKABENB-CgAAAAAAAAAAYgAAAAAAAA"), snapshot[models.KeyTCF])
		assert.Equal(t, models.ValueDenied, snapshot[models.KeyGDPRConsentGiven])
	})

	s.T().Run("partner layer wins over iab on collision", func(t *testing.T) {
		src := iab.NewMemorySource()
		require.NoError(t, src.Set(s.ctx, models.KeyUSP, "1YNN"))
		store := cmp.New(stateWith(true, true, map[models.PartnerID]bool{"p1": false}))
		a := s.newAdapter(store, Config{PartnerIDMap: map[string]string{"p1": string(models.KeyUSP)}}, WithIABSource(src))

		snapshot := a.Consents(s.ctx)
		assert.Equal(t, models.ValueDenied, snapshot[models.KeyUSP])
	})

	s.T().Run("unreadable source drops only the iab layer", func(t *testing.T) {
		m := metrics.NewWithRegisterer(prometheus.NewRegistry())
		a := s.newAdapter(cmp.New(stateWith(true, true, nil)), DefaultConfig(),
			WithIABSource(failingSource{}),
			WithMetrics(m),
		)

		snapshot := a.Consents(s.ctx)

		assert.Equal(t, models.Snapshot{
			models.KeyCCPAOptIn:        models.ValueGranted,
			models.KeyGDPRConsentGiven: models.ValueGranted,
		}, snapshot)
		assert.Equal(t, float64(1), promtest.ToFloat64(m.IABReadFailures))
	})
}

func (s *AdapterSuite) TestIABChangesReachDelegate() {
	src := iab.NewMemorySource()
	a := s.newAdapter(cmp.New(cmp.DefaultState()), DefaultConfig(), WithIABSource(src))
	var received atomic.Bool
	a.SetDelegate(DelegateFunc(func(key models.Key) {
		if key == models.KeyGPP {
			received.Store(true)
		}
	}))
	require.NoError(s.T(), a.Initialize(s.ctx))

	var n int
	s.Eventually(func() bool {
		n++
		_ = src.Set(s.ctx, models.KeyGPP, fmt.Sprintf("DBABMA~v%d", n))
		return received.Load()
	}, time.Second, 10*time.Millisecond)
}

func (s *AdapterSuite) TestSimulatedUpdateChangeDetection() {
	s.T().Run("unchanged values produce no notifications", func(t *testing.T) {
		store := cmp.New(stateWith(true, true, map[models.PartnerID]bool{"p1": true}),
			cmp.WithCoinFlip(func() bool { return true }))
		a := s.newAdapter(store, DefaultConfig())
		ctrl := gomock.NewController(t)
		delegate := mocks.NewMockDelegate(ctrl)
		a.SetDelegate(delegate)

		changes := store.SimulateExternalUpdate()
		assert.True(t, changes.IsEmpty())
	})

	s.T().Run("every changed key is reported, partners translated", func(t *testing.T) {
		store := cmp.New(stateWith(true, true, map[models.PartnerID]bool{"p1": true, "p2": false}),
			cmp.WithCoinFlip(func() bool { return false }))
		a := s.newAdapter(store, Config{PartnerIDMap: map[string]string{"p1": "chartboost"}})
		rec := &recorder{}
		a.SetDelegate(rec)

		store.SimulateExternalUpdate()

		assert.Equal(t, []models.Key{models.KeyCCPAOptIn, models.KeyGDPRConsentGiven, "chartboost"}, rec.Keys())
	})

	s.T().Run("each notification sees the updated snapshot", func(t *testing.T) {
		store := cmp.New(stateWith(false, false, nil), cmp.WithCoinFlip(func() bool { return true }))
		a := s.newAdapter(store, DefaultConfig())
		seen := map[models.Key]models.Value{}
		a.SetDelegate(DelegateFunc(func(key models.Key) {
			seen[key] = a.Consents(s.ctx)[key]
		}))

		store.SimulateExternalUpdate()

		assert.Equal(t, models.ValueGranted, seen[models.KeyCCPAOptIn])
		assert.Equal(t, models.ValueGranted, seen[models.KeyGDPRConsentGiven])
	})
}

func (s *AdapterSuite) TestDelegateLifecycle() {
	s.T().Run("released delegate is not called and mutations still succeed", func(t *testing.T) {
		store := cmp.New(stateWith(true, true, nil))
		m := metrics.NewWithRegisterer(prometheus.NewRegistry())
		a := s.newAdapter(store, DefaultConfig(), WithMetrics(m))
		ctrl := gomock.NewController(t)
		delegate := mocks.NewMockDelegate(ctrl)
		handle := a.SetDelegate(delegate)
		handle.Release()

		spy := &completionSpy{}
		require.NoError(t, a.DenyConsent(s.ctx, models.SourceUser, spy.fn()))

		assert.True(t, spy.succeeded)
		assert.False(t, handle.Active())
		assert.Equal(t, models.ValueDenied, a.Consents(s.ctx)[models.KeyCCPAOptIn])
		assert.Equal(t, float64(2), promtest.ToFloat64(m.NotificationsDropped.WithLabelValues("released")))
	})

	s.T().Run("replacing the delegate releases the previous handle", func(t *testing.T) {
		store := cmp.New(stateWith(true, true, nil))
		a := s.newAdapter(store, DefaultConfig())
		ctrl := gomock.NewController(t)
		first := mocks.NewMockDelegate(ctrl)
		second := mocks.NewMockDelegate(ctrl)
		second.EXPECT().OnConsentChange(models.KeyCCPAOptIn)
		second.EXPECT().OnConsentChange(models.KeyGDPRConsentGiven)

		oldHandle := a.SetDelegate(first)
		newHandle := a.SetDelegate(second)

		require.NoError(t, a.GrantConsent(s.ctx, models.SourceUser, nil))
		assert.False(t, oldHandle.Active())
		assert.True(t, newHandle.Active())
		assert.NotEqual(t, oldHandle.ID(), newHandle.ID())
	})

	s.T().Run("no delegate drops notifications", func(t *testing.T) {
		store := cmp.New(stateWith(true, true, nil))
		m := metrics.NewWithRegisterer(prometheus.NewRegistry())
		a := s.newAdapter(store, DefaultConfig(), WithMetrics(m))
		a.SetDelegate(nil)

		require.NoError(t, a.ResetConsent(s.ctx, nil))
		assert.Equal(t, float64(2), promtest.ToFloat64(m.NotificationsDropped.WithLabelValues("no_delegate")))
	})

	s.T().Run("panicking delegate does not break the mutation", func(t *testing.T) {
		store := cmp.New(stateWith(true, true, nil))
		a := s.newAdapter(store, DefaultConfig())
		a.SetDelegate(DelegateFunc(func(models.Key) { panic("host crashed") }))

		spy := &completionSpy{}
		require.NoError(t, a.DenyConsent(s.ctx, models.SourceUser, spy.fn()))
		assert.True(t, spy.succeeded)
		assert.Equal(t, models.ValueDenied, a.Consents(s.ctx)[models.KeyGDPRConsentGiven])
	})
}

func (s *AdapterSuite) TestOperationErrors() {
	s.T().Run("read-only backend reports unsupported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		backend := mocks.NewMockBackend(ctrl)
		backend.EXPECT().Subscribe(gomock.Any()).Return(nil)
		a := New(backend, nil, DefaultConfig(), WithLogger(s.logger))

		for name, op := range map[string]func(Completion) error{
			"grant": func(c Completion) error { return a.GrantConsent(s.ctx, models.SourceUser, c) },
			"deny":  func(c Completion) error { return a.DenyConsent(s.ctx, models.SourceUser, c) },
			"reset": func(c Completion) error { return a.ResetConsent(s.ctx, c) },
		} {
			spy := &completionSpy{calls: 0, succeeded: true}
			err := op(spy.fn())
			assert.True(t, dErrors.HasCode(err, dErrors.CodeUnsupported), name)
			assert.Equal(t, 1, spy.calls, name)
			assert.False(t, spy.succeeded, name)
		}
	})

	s.T().Run("invalid source is rejected without touching the cmp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		backend := mocks.NewMockMutableBackend(ctrl)
		backend.EXPECT().Subscribe(gomock.Any()).Return(nil)
		a := New(backend, nil, DefaultConfig())

		spy := &completionSpy{}
		err := a.GrantConsent(s.ctx, "robot", spy.fn())
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		assert.False(t, spy.succeeded)
	})

	s.T().Run("cancelled context reports timeout", func(t *testing.T) {
		a := s.newAdapter(cmp.New(stateWith(true, true, nil)), DefaultConfig())
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()

		err := a.DenyConsent(ctx, models.SourceUser, nil)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeTimeout))
		assert.Equal(t, models.ValueGranted, a.Consents(s.ctx)[models.KeyCCPAOptIn])
	})

	s.T().Run("closed adapter reports unavailable", func(t *testing.T) {
		store := cmp.New(stateWith(true, true, nil))
		a := New(store, nil, DefaultConfig())
		a.Close()

		spy := &completionSpy{}
		err := a.GrantConsent(s.ctx, models.SourceUser, spy.fn())
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
		assert.False(t, spy.succeeded)
		assert.Equal(t, 0, store.ObserverCount())
		assert.True(t, dErrors.HasCode(a.Initialize(s.ctx), dErrors.CodeUnavailable))
	})

	s.T().Run("failed operations are counted by code", func(t *testing.T) {
		m := metrics.NewWithRegisterer(prometheus.NewRegistry())
		a := s.newAdapter(cmp.New(cmp.DefaultState()), DefaultConfig(), WithMetrics(m))

		_ = a.DenyConsent(s.ctx, "", nil)
		require.NoError(t, a.DenyConsent(s.ctx, models.SourceUser, nil))

		assert.Equal(t, float64(1), promtest.ToFloat64(m.Operations.WithLabelValues("deny", "invalid_input")))
		assert.Equal(t, float64(1), promtest.ToFloat64(m.Operations.WithLabelValues("deny", "success")))
	})
}

func (s *AdapterSuite) TestShowConsentDialog() {
	s.T().Run("requested type is passed to the presenter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		presenter := mocks.NewMockDialogPresenter(ctrl)
		anchor := struct{ View string }{"root"}
		presenter.EXPECT().Present(gomock.Any(), models.DialogDetailed, anchor).Return(nil)
		a := New(cmp.New(cmp.DefaultState()), presenter, DefaultConfig())
		spy := &completionSpy{}

		require.NoError(t, a.ShowConsentDialog(s.ctx, models.DialogDetailed, anchor, spy.fn()))
		assert.True(t, spy.succeeded)
	})

	s.T().Run("unknown type falls back to the configured default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		presenter := mocks.NewMockDialogPresenter(ctrl)
		presenter.EXPECT().Present(gomock.Any(), models.DialogDetailed, nil).Return(nil)
		a := New(cmp.New(cmp.DefaultState()), presenter, Config{DefaultDialogType: models.DialogDetailed})

		require.NoError(t, a.ShowConsentDialog(s.ctx, "fullscreen", nil, nil))
	})

	s.T().Run("presenter failure reports unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		presenter := mocks.NewMockDialogPresenter(ctrl)
		presenter.EXPECT().Present(gomock.Any(), models.DialogConcise, nil).Return(errors.New("no window"))
		a := New(cmp.New(cmp.DefaultState()), presenter, DefaultConfig())
		spy := &completionSpy{}

		err := a.ShowConsentDialog(s.ctx, models.DialogConcise, nil, spy.fn())
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
		assert.Equal(t, 1, spy.calls)
		assert.False(t, spy.succeeded)
	})

	s.T().Run("missing presenter reports unsupported", func(t *testing.T) {
		a := New(cmp.New(cmp.DefaultState()), nil, DefaultConfig())
		err := a.ShowConsentDialog(s.ctx, models.DialogConcise, nil, nil)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnsupported))
	})

	s.T().Run("demo presenter dismissal notifies the delegate", func(t *testing.T) {
		store := cmp.New(stateWith(true, true, nil), cmp.WithCoinFlip(func() bool { return false }))
		a := s.newAdapter(store, DefaultConfig())
		rec := &recorder{}
		a.SetDelegate(rec)

		require.NoError(t, a.ShowConsentDialog(s.ctx, models.DialogConcise, nil, nil))
		assert.ElementsMatch(t, []models.Key{models.KeyCCPAOptIn, models.KeyGDPRConsentGiven}, rec.Keys())
		assert.False(t, a.ShouldCollectConsent())
	})
}

func (s *AdapterSuite) TestAuditTrail() {
	store := audit.NewInMemoryStore()
	publisher := audit.NewPublisher(store)
	a := s.newAdapter(cmp.New(cmp.DefaultState()), DefaultConfig(), WithAuditor(publisher))

	require.NoError(s.T(), a.GrantConsent(s.ctx, models.SourceUser, nil))
	_ = a.ResetConsent(s.ctx, nil)

	events, err := publisher.List(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(models.AuditActionConsentGranted, events[0].Action)
	s.Equal("user", events[0].Source)
	s.Equal(ModuleID, events[0].Module)
	s.True(events[0].Succeeded)
	s.Equal(models.AuditActionConsentReset, events[1].Action)
}

func (s *AdapterSuite) TestInitialize() {
	s.T().Run("initializes the backend once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		backend := mocks.NewMockBackend(ctrl)
		backend.EXPECT().Subscribe(gomock.Any()).Return(nil)
		backend.EXPECT().Initialize(gomock.Any()).Return(nil).Times(1)
		a := New(backend, nil, DefaultConfig())

		require.NoError(t, a.Initialize(s.ctx))
		require.NoError(t, a.Initialize(s.ctx))
	})

	s.T().Run("backend failure reports unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		backend := mocks.NewMockBackend(ctrl)
		backend.EXPECT().Subscribe(gomock.Any()).Return(nil)
		backend.EXPECT().Initialize(gomock.Any()).Return(errors.New("sdk missing"))
		a := New(backend, nil, DefaultConfig())

		err := a.Initialize(s.ctx)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
	})
}

func (s *AdapterSuite) TestNewFromCredentials() {
	s.T().Run("reads dialog type and partner map", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		presenter := mocks.NewMockDialogPresenter(ctrl)
		presenter.EXPECT().Present(gomock.Any(), models.DialogDetailed, nil).Return(nil)
		store := cmp.New(stateWith(true, true, map[models.PartnerID]bool{"p9": true}))

		a, err := NewFromCredentials(store, presenter, map[string]any{
			"default_dialog_type": "detailed",
			"partner_id_map":      map[string]any{"p9": "ironsource"},
			"api_key":             "ignored",
		})
		require.NoError(t, err)
		t.Cleanup(a.Close)

		assert.Equal(t, models.ValueGranted, a.Consents(s.ctx)["ironsource"])
		require.NoError(t, a.ShowConsentDialog(s.ctx, "", nil, nil))
	})

	s.T().Run("rejects malformed credentials", func(t *testing.T) {
		store := cmp.New(cmp.DefaultState())
		for name, creds := range map[string]map[string]any{
			"dialog type not a string": {"default_dialog_type": 3},
			"unknown dialog type":      {"default_dialog_type": "fullscreen"},
			"partner map not a map":    {"partner_id_map": "p1=chartboost"},
			"partner value not string": {"partner_id_map": map[string]any{"p1": 1}},
			"blank partner key":        {"partner_id_map": map[string]string{"p1": " "}},
		} {
			_, err := NewFromCredentials(store, nil, creds)
			assert.Error(t, err, name)
		}
		assert.Equal(t, 0, store.ObserverCount())
	})
}

func (s *AdapterSuite) TestConcurrentMutations() {
	s.T().Run("racing grants and denials leave a coherent state", func(t *testing.T) {
		store := cmp.New(cmp.DefaultState())
		a := s.newAdapter(store, DefaultConfig())
		rec := &recorder{}
		a.SetDelegate(rec)

		res := testutil.RunConcurrent(20, func(idx int) error {
			if idx%2 == 0 {
				return a.GrantConsent(s.ctx, models.SourceUser, nil)
			}
			return a.DenyConsent(s.ctx, models.SourceUser, nil)
		})

		assert.Equal(t, int32(20), res.Successes)
		snapshot := a.Consents(s.ctx)
		assert.Equal(t, snapshot[models.KeyCCPAOptIn], snapshot[models.KeyGDPRConsentGiven])
		assert.Len(t, rec.Keys(), 40)
	})

	s.T().Run("mutations after close report unavailable", func(t *testing.T) {
		a := s.newAdapter(cmp.New(cmp.DefaultState()), DefaultConfig())
		a.Close()

		res := testutil.RunConcurrent(10, func(int) error {
			return a.ResetConsent(s.ctx, nil)
		})

		assert.Equal(t, int32(10), res.Unavailable)
	})
}
