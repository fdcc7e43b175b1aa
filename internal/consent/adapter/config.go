package adapter

import (
	"fmt"
	"maps"
	"slices"

	"cmpref/internal/consent/models"
	dErrors "cmpref/pkg/domain-errors"
	"cmpref/pkg/validation"
)

// Credential keys read by NewFromCredentials. Other keys are accepted and ignored.
const (
	CredentialDefaultDialogType = "default_dialog_type"
	CredentialPartnerIDMap      = "partner_id_map"
)

// Config carries the module settings a host passes at construction time.
type Config struct {
	// DefaultDialogType is shown when the host asks for a variant the CMP does not offer.
	DefaultDialogType models.DialogType `validate:"omitempty,oneof=concise detailed"`
	// PartnerIDMap adds to or overrides the built-in CMP → external partner table.
	PartnerIDMap map[string]string `validate:"dive,keys,notblank,endkeys,notblank"`
}

// DefaultConfig returns the settings used when the host provides none.
func DefaultConfig() Config {
	return Config{DefaultDialogType: models.DialogConcise}
}

// Validate checks that the config is well-formed.
func (c *Config) Validate() error {
	if c == nil {
		return dErrors.New(dErrors.CodeBadRequest, "config is required")
	}
	return validation.Validate(c)
}

func (c Config) partnerMappings() []models.PartnerMapping {
	out := make([]models.PartnerMapping, 0, len(c.PartnerIDMap))
	for _, from := range slices.Sorted(maps.Keys(c.PartnerIDMap)) {
		out = append(out, models.PartnerMapping{From: models.PartnerID(from), To: models.Key(c.PartnerIDMap[from])})
	}
	return out
}

// ParseCredentials converts an opaque credentials map into a validated Config.
func ParseCredentials(credentials map[string]any) (Config, error) {
	cfg := DefaultConfig()
	if raw, ok := credentials[CredentialDefaultDialogType]; ok && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return Config{}, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("%s must be a string", CredentialDefaultDialogType))
		}
		if s != "" {
			cfg.DefaultDialogType = models.DialogType(s)
		}
	}
	if raw, ok := credentials[CredentialPartnerIDMap]; ok && raw != nil {
		m, err := stringMap(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.PartnerIDMap = m
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func stringMap(raw any) (map[string]string, error) {
	switch v := raw.(type) {
	case map[string]string:
		return maps.Clone(v), nil
	case map[string]any:
		out := make(map[string]string, len(v))
		for k, val := range v {
			s, ok := val.(string)
			if !ok {
				return nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("%s[%s] must be a string", CredentialPartnerIDMap, k))
			}
			out[k] = s
		}
		return out, nil
	default:
		return nil, dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("%s must be a map of strings", CredentialPartnerIDMap))
	}
}
