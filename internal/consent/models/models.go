package models

// Key identifies a consent dimension. Standard keys name a consent standard,
// IAB keys carry an encoded consent string, and custom keys name a partner.
type Key string

// Standard boolean consent keys.
const (
	KeyCCPAOptIn        Key = "ccpa_opt_in"
	KeyGDPRConsentGiven Key = "gdpr_consent_given"
)

// IAB string keys. Their values are opaque payloads and are never parsed here.
const (
	KeyTCF Key = "IABTCF_TCString"
	KeyUSP Key = "IABUSPrivacy_String"
	KeyGPP Key = "IABGPP_HDR_GppString"
)

// StandardKeys lists the boolean standards tracked by the CMP, in report order.
var StandardKeys = []Key{KeyCCPAOptIn, KeyGDPRConsentGiven}

// IABKeys lists the IAB string keys an IAB source may provide.
var IABKeys = []Key{KeyTCF, KeyUSP, KeyGPP}

// IsIAB reports whether the key names an IAB consent string.
func (k Key) IsIAB() bool {
	switch k {
	case KeyTCF, KeyUSP, KeyGPP:
		return true
	}
	return false
}

// IsStandard reports whether the key names a tracked boolean standard.
func (k Key) IsStandard() bool {
	return k == KeyCCPAOptIn || k == KeyGDPRConsentGiven
}

// Value is the state of a consent key. Boolean keys use Granted or Denied;
// IAB keys hold the raw encoded string.
type Value string

const (
	ValueGranted Value = "granted"
	ValueDenied  Value = "denied"
)

// ValueOf maps a boolean signal to Granted or Denied.
func ValueOf(granted bool) Value {
	if granted {
		return ValueGranted
	}
	return ValueDenied
}

// Snapshot is the complete mapping of consent keys to values at a point in
// time. Snapshots are built fresh on every read.
type Snapshot map[Key]Value

// Source labels who made a consent decision.
type Source string

const (
	SourceUser      Source = "user"
	SourceDeveloper Source = "developer"
)

// IsValid checks if the source is one of the supported enum values.
func (s Source) IsValid() bool {
	return s == SourceUser || s == SourceDeveloper
}

// DialogType selects the consent dialog variant.
type DialogType string

const (
	DialogConcise  DialogType = "concise"
	DialogDetailed DialogType = "detailed"
)

// IsValid checks if the dialog type is one of the supported enum values.
func (d DialogType) IsValid() bool {
	return d == DialogConcise || d == DialogDetailed
}
