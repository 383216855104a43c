package request

import (
	"fmt"
	"time"

	"github.com/linskybing/portal-go/pkg/i18n"
)

// Remaining is the time left before a deadline, floored to whole hours.
type Remaining struct {
	Expired bool `json:"expired"`
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
}

func TimeRemaining(deadline, now time.Time) Remaining {
	d := deadline.Sub(now)
	if d < 0 {
		return Remaining{Expired: true}
	}
	total := int(d / time.Hour)
	if total < 24 {
		return Remaining{Hours: total}
	}
	return Remaining{Days: total / 24, Hours: total % 24}
}

func (r Remaining) TotalHours() int {
	return r.Days*24 + r.Hours
}

func (r Remaining) String() string {
	switch {
	case r.Expired:
		return "expired"
	case r.Days == 0:
		return fmt.Sprintf("%dh left", r.Hours)
	default:
		return fmt.Sprintf("%dd %dh left", r.Days, r.Hours)
	}
}

func (r Remaining) Localize(tr *i18n.Translator, lang i18n.Language) string {
	switch {
	case r.Expired:
		return tr.Translate(i18n.KeyTimeExpired, lang)
	case r.Days == 0:
		return tr.Format(i18n.KeyTimeHoursLeft, lang, r.Hours)
	default:
		return tr.Format(i18n.KeyTimeDaysHoursLeft, lang, r.Days, r.Hours)
	}
}

// Countdown renders whole hours as "N days and M hours".
func Countdown(hours int, tr *i18n.Translator, lang i18n.Language) string {
	if hours < 0 {
		hours = 0
	}
	return tr.Format(i18n.KeyCountdown, lang, hours/24, hours%24)
}
