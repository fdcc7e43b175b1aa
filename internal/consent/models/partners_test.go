package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartnerMap_Translate(t *testing.T) {
	m := DefaultPartnerMap()

	assert.Equal(t, Key("chartboost"), m.Translate("reference-cmp-partner-1"))
	assert.Equal(t, Key("admob"), m.Translate("reference-cmp-partner-2"))
	assert.Equal(t, Key("facebook"), m.Translate("reference-cmp-partner-3"))
	assert.Equal(t, Key("some_other_sdk"), m.Translate("reference-cmp-partner-4"))
	assert.Equal(t, Key("unknown-partner"), m.Translate("unknown-partner"), "unmapped ids pass through")
}

func TestPartnerMap_ZeroValueIsIdentity(t *testing.T) {
	var m PartnerMap
	assert.Equal(t, Key("p1"), m.Translate("p1"))
	assert.Equal(t, 0, m.Len())
}

func TestNewPartnerMap_Duplicates(t *testing.T) {
	m, duplicates := NewPartnerMap(
		PartnerMapping{From: "p1", To: "chartboost"},
		PartnerMapping{From: "p1", To: "admob"},
		PartnerMapping{From: "p2", To: "facebook"},
		PartnerMapping{From: "p2", To: "facebook"},
	)

	assert.Equal(t, []PartnerID{"p1"}, duplicates)
	assert.Equal(t, Key("admob"), m.Translate("p1"), "last mapping wins")
	assert.Equal(t, 2, m.Len())
}

func TestPartnerMap_With(t *testing.T) {
	base := DefaultPartnerMap()

	m, duplicates := base.With(
		PartnerMapping{From: "reference-cmp-partner-1", To: "vungle"},
		PartnerMapping{From: "p9", To: "ironsource"},
	)

	assert.Empty(t, duplicates, "overriding the base table is not a duplicate")
	assert.Equal(t, Key("vungle"), m.Translate("reference-cmp-partner-1"))
	assert.Equal(t, Key("ironsource"), m.Translate("p9"))
	assert.Equal(t, Key("chartboost"), base.Translate("reference-cmp-partner-1"), "base is not modified")
	assert.Equal(t, 5, m.Len())
}

func TestKeyClassification(t *testing.T) {
	for _, k := range IABKeys {
		assert.True(t, k.IsIAB(), k)
		assert.False(t, k.IsStandard(), k)
	}
	for _, k := range StandardKeys {
		assert.True(t, k.IsStandard(), k)
		assert.False(t, k.IsIAB(), k)
	}
	assert.False(t, Key("chartboost").IsIAB())
}

func TestEnums(t *testing.T) {
	assert.Equal(t, ValueGranted, ValueOf(true))
	assert.Equal(t, ValueDenied, ValueOf(false))
	assert.True(t, SourceUser.IsValid())
	assert.True(t, SourceDeveloper.IsValid())
	assert.False(t, Source("").IsValid())
	assert.True(t, DialogConcise.IsValid())
	assert.True(t, DialogDetailed.IsValid())
	assert.False(t, DialogType("fullscreen").IsValid())
}
