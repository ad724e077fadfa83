package domain

import (
	"bytes"
	"encoding/json"
)

// BookingSettings is the typed view of businesses.booking_settings.
// Unknown keys are ignored; a nil pointer means the key is absent.
type BookingSettings struct {
	RemindersEnabled *bool
}

const keyRemindersEnabled = "reminders_enabled"

// ParseBookingSettings never fails. A null, empty or unparseable blob yields the zero value,
// which resolves every policy to its default. A JSON string carrying serialized JSON is
// unwrapped once, since older rows stored the settings double-encoded.
func ParseBookingSettings(raw []byte) BookingSettings {
	var out BookingSettings
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return out
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return out
		}
		raw = bytes.TrimSpace([]byte(inner))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return out
	}
	if v, ok := fields[keyRemindersEnabled]; ok {
		out.RemindersEnabled = strictBool(v)
	}
	return out
}

// strictBool only accepts the JSON literals true and false. Strings such as "false" or
// numbers are treated as absent.
func strictBool(v json.RawMessage) *bool {
	switch string(bytes.TrimSpace(v)) {
	case "true":
		b := true
		return &b
	case "false":
		b := false
		return &b
	default:
		return nil
	}
}

// RemindersEnabledOrDefault is opt-out: only an explicit false disables reminders.
func (s BookingSettings) RemindersEnabledOrDefault() bool {
	return s.RemindersEnabled == nil || *s.RemindersEnabled
}

// RemindersEnabled resolves the effective reminder policy straight from the stored blob.
func RemindersEnabled(raw []byte) bool {
	return ParseBookingSettings(raw).RemindersEnabledOrDefault()
}
