package redaction

import (
	"strings"

	"praxis/internal/shared/utils"
)

// sensitiveKeys are snapshot fields masked before an audit entry is
// persisted. Matching is case-insensitive on the trailing key segment, so
// "assignee_email" and "Email" both hit the "email" rule.
var sensitiveKeys = map[string]struct{}{
	"email":    {},
	"phone":    {},
	"name":     {},
	"token":    {},
	"secret":   {},
	"password": {},
}

// FieldMaskRedactor masks well-known PII keys in before/after snapshots.
// Masking keeps the shape of the value visible for investigations without
// storing the raw contents in the ledger.
type FieldMaskRedactor struct{}

func NewFieldMaskRedactor() *FieldMaskRedactor {
	return &FieldMaskRedactor{}
}

func (r *FieldMaskRedactor) Redact(snapshot map[string]interface{}) map[string]interface{} {
	if snapshot == nil {
		return nil
	}

	out := make(map[string]interface{}, len(snapshot))
	for k, v := range snapshot {
		if !isSensitiveKey(k) {
			out[k] = v
			continue
		}

		s, ok := v.(string)
		if !ok {
			out[k] = "***"
			continue
		}
		if strings.Contains(s, "@") {
			out[k] = utils.MaskEmail(s)
		} else {
			out[k] = utils.MaskString(s)
		}
	}
	return out
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	if _, ok := sensitiveKeys[lower]; ok {
		return true
	}
	for suffix := range sensitiveKeys {
		if strings.HasSuffix(lower, "_"+suffix) {
			return true
		}
	}
	return false
}
