package models

// Audit event actions describe what happened to consent state.
const (
	AuditActionConsentChanged  = "consent_changed" // The CMP reported a new value for a key
	AuditActionConsentGranted  = "consent_granted" // Grant forwarded to the CMP
	AuditActionConsentDenied   = "consent_denied"  // Deny forwarded to the CMP
	AuditActionConsentReset    = "consent_reset"   // Reset forwarded to the CMP
	AuditActionDialogPresented = "consent_dialog"  // A consent dialog was shown
)

// AuditSubjectModule is the audit subject used for module-wide events.
const AuditSubjectModule = "module"
