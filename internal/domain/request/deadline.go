package request

import (
	"fmt"
	"time"
)

const (
	PolicyTiered = "tiered"
	PolicyFixed  = "fixed"
)

// DeadlinePolicy decides how long the team has to deliver a preview.
// Every view computes deadlines from the same policy value.
type DeadlinePolicy struct {
	mode  string
	fixed time.Duration
}

var tieredWindows = map[SiteType]time.Duration{
	SiteBasic:    24 * time.Hour,
	SiteStandard: 48 * time.Hour,
	SitePremium:  72 * time.Hour,
}

func NewDeadlinePolicy(mode string, fixedHours int) (DeadlinePolicy, error) {
	switch mode {
	case "", PolicyTiered:
		return DeadlinePolicy{mode: PolicyTiered}, nil
	case PolicyFixed:
		if fixedHours <= 0 {
			return DeadlinePolicy{}, fmt.Errorf("fixed deadline must be positive, got %d", fixedHours)
		}
		return DeadlinePolicy{mode: PolicyFixed, fixed: time.Duration(fixedHours) * time.Hour}, nil
	}
	return DeadlinePolicy{}, fmt.Errorf("unknown deadline policy %q", mode)
}

func TieredPolicy() DeadlinePolicy {
	return DeadlinePolicy{mode: PolicyTiered}
}

func (p DeadlinePolicy) Mode() string {
	return p.mode
}

func (p DeadlinePolicy) Window(t SiteType) time.Duration {
	if p.mode == PolicyFixed {
		return p.fixed
	}
	if w, ok := tieredWindows[t]; ok {
		return w
	}
	return tieredWindows[SitePremium]
}

func (p DeadlinePolicy) DeadlineFor(t SiteType, submittedAt time.Time) time.Time {
	return submittedAt.Add(p.Window(t))
}
