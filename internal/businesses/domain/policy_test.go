package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemindersEnabled(t *testing.T) {
	cases := []struct {
		name string
		raw  []byte
		want bool
	}{
		{"nil blob", nil, true},
		{"empty blob", []byte(""), true},
		{"json null", []byte("null"), true},
		{"empty object", []byte(`{}`), true},
		{"other keys only", []byte(`{"slot_minutes":30}`), true},
		{"explicit false", []byte(`{"reminders_enabled": false}`), false},
		{"explicit true", []byte(`{"reminders_enabled": true}`), true},
		{"string false", []byte(`{"reminders_enabled": "false"}`), true},
		{"zero", []byte(`{"reminders_enabled": 0}`), true},
		{"null flag", []byte(`{"reminders_enabled": null}`), true},
		{"unparseable", []byte(`{reminders_enabled: false`), true},
		{"array", []byte(`[false]`), true},
		{"double encoded false", []byte(`"{\"reminders_enabled\":false}"`), false},
		{"double encoded garbage", []byte(`"not json"`), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RemindersEnabled(tc.raw))
		})
	}
}

func TestParseBookingSettings_KeepsPresence(t *testing.T) {
	s := ParseBookingSettings([]byte(`{"reminders_enabled": true}`))
	if assert.NotNil(t, s.RemindersEnabled) {
		assert.True(t, *s.RemindersEnabled)
	}

	s = ParseBookingSettings([]byte(`{}`))
	assert.Nil(t, s.RemindersEnabled)
	assert.True(t, s.RemindersEnabledOrDefault())
}
