package template

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/settings/domain"
)

func TestRender(t *testing.T) {
	cases := []struct {
		name   string
		tpl    string
		values map[string]string
		want   string
	}{
		{
			name:   "substitutes values",
			tpl:    "Hi {{customerName}}, see {{feedbackUrl}}",
			values: map[string]string{"customerName": "Ana", "feedbackUrl": "https://x/y?token=abc"},
			want:   "Hi Ana, see https://x/y?token=abc",
		},
		{
			name:   "missing value renders empty",
			tpl:    "Hi {{customerName}}, from {{businessName}}.",
			values: map[string]string{"customerName": "Ana"},
			want:   "Hi Ana, from .",
		},
		{
			name:   "every occurrence replaced",
			tpl:    "{{businessName}} | {{businessName}} | {{ businessName }}",
			values: map[string]string{"businessName": "Salon Sol"},
			want:   "Salon Sol | Salon Sol | Salon Sol",
		},
		{
			name:   "nil values",
			tpl:    "[{{a}}]",
			values: nil,
			want:   "[]",
		},
		{
			name:   "values are not re-expanded",
			tpl:    "{{a}}",
			values: map[string]string{"a": "{{b}}", "b": "nope"},
			want:   "{{b}}",
		},
		{
			name: "no placeholders",
			tpl:  "plain text {not a placeholder}",
			want: "plain text {not a placeholder}",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Render(tc.tpl, tc.values))
		})
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText("<p>Hi Ana,</p>\n  <p>Visit <a href=\"x\">us</a> &amp; more<br>soon</p>")
	assert.Equal(t, "Hi Ana,\n\nVisit us & more\nsoon", got)
}

func TestFormatLongDate(t *testing.T) {
	d := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Friday, March 14, 2025", FormatLongDate(d, "en"))
	assert.Equal(t, "Friday, March 14, 2025", FormatLongDate(d, ""))
	assert.Equal(t, "viernes, 14 de marzo de 2025", FormatLongDate(d, "es"))
	assert.Equal(t, "viernes, 14 de marzo de 2025", FormatLongDate(d, "es-ES"))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "9:30 AM", FormatTime("09:30", "en"))
	assert.Equal(t, "5:05 PM", FormatTime("17:05", "en_US"))
	assert.Equal(t, "09:30", FormatTime("09:30", "es"))
	assert.Equal(t, "soon", FormatTime("soon", "en"))
}

type overrideSettings struct {
	vals map[string]string
	err  error
}

func (o overrideSettings) GetString(_ context.Context, key string, _ *uuid.UUID, def string) (string, error) {
	if o.err != nil {
		return def, o.err
	}
	if v, ok := o.vals[key]; ok {
		return v, nil
	}
	return def, nil
}

func (o overrideSettings) GetDuration(_ context.Context, _ string, _ *uuid.UUID, def time.Duration) (time.Duration, error) {
	return def, nil
}

func (o overrideSettings) GetInt(_ context.Context, _ string, _ *uuid.UUID, def int) (int, error) {
	return def, nil
}

var _ sdomain.Service = overrideSettings{}

func TestSet_Defaults(t *testing.T) {
	s, err := LoadSet(nil)
	require.NoError(t, err)

	fb := s.Feedback(context.Background(), uuid.New())
	assert.Contains(t, fb.Body, "{{feedbackUrl}}")
	assert.Contains(t, fb.Subject, "{{businessName}}")

	rm := s.Reminder(context.Background(), uuid.New())
	assert.Contains(t, rm.Body, "{{bookingDate}}")
	assert.Contains(t, rm.Body, "{{customerName}}")
}

func TestSet_TenantOverride(t *testing.T) {
	s, err := LoadSet(overrideSettings{vals: map[string]string{
		sdomain.KeyFeedbackTemplate: "Hola {{customerName}}: {{feedbackUrl}}",
	}})
	require.NoError(t, err)

	fb := s.Feedback(context.Background(), uuid.New())
	assert.Equal(t, "Hola {{customerName}}: {{feedbackUrl}}", fb.Body)
	assert.Equal(t, defaultFeedbackSubject, fb.Subject)
}

func TestSet_SettingsErrorFallsBack(t *testing.T) {
	s, err := LoadSet(overrideSettings{err: errors.New("db down")})
	require.NoError(t, err)

	rm := s.Reminder(context.Background(), uuid.New())
	assert.Equal(t, defaultReminderSubject, rm.Subject)
	assert.Contains(t, rm.Body, "{{businessName}}")
}
