package service

import (
	"fmt"
	"net/url"
	"time"

	bkdomain "github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/bookings/domain"
)

const (
	feedbackMinAge = 24 * time.Hour
	feedbackMaxAge = 48 * time.Hour
)

// ReminderDate returns tomorrow's calendar date in loc as midnight UTC. The day is added
// to the local date before formatting, so a run at 23:30 local never picks the wrong day.
func ReminderDate(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, time.UTC)
}

// FeedbackWindow returns [now-48h, now-24h). now should already be in the business timezone.
func FeedbackWindow(now time.Time) bkdomain.FeedbackWindow {
	return bkdomain.FeedbackWindow{Start: now.Add(-feedbackMaxAge), End: now.Add(-feedbackMinAge)}
}

// FeedbackURL builds <base>/feedback.html?token=<token>.
func FeedbackURL(base, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse public base url %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("public base url %q must be absolute", base)
	}
	u = u.JoinPath("feedback.html")
	u.RawQuery = url.Values{"token": {token}}.Encode()
	return u.String(), nil
}
