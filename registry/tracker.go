package registry

import "sync/atomic"

// Tracker records, for one payload in a confirming Registry, how often its
// hint shortlists text that the regex then fails to match. It is pure
// instrumentation: nothing in Registry reads a Tracker's state to decide
// what Query returns, unlike the prefilter effectiveness tracker this is
// adapted from, which would retire a prefilter outright once it grew
// unreliable. Disabling a hint here would risk dropping a real match, so
// a Tracker only ever reports, never steers.
type Tracker struct {
	shortlisted atomic.Uint64
	confirmed   atomic.Uint64

	checkInterval uint64
	minEfficiency float64
	warmupPeriod  uint64
}

// TrackerConfig tunes when a Tracker considers its sample large enough to
// judge effectiveness.
type TrackerConfig struct {
	// CheckInterval is stored on the Tracker but not consulted: Stats
	// recomputes Effective on every call.
	CheckInterval uint64

	// MinEfficiency is the confirmed/shortlisted ratio below which a hint
	// is judged ineffective, once WarmupPeriod has been reached.
	MinEfficiency float64

	// WarmupPeriod is the minimum number of shortlists before Effective
	// means anything; before that it is reported true.
	WarmupPeriod uint64
}

// DefaultTrackerConfig mirrors the defaults used for prefilter effectiveness
// tracking: a check interval of 64 shortlists (unused, see CheckInterval),
// expect at least 10% to confirm, don't judge until 128 samples have
// accumulated.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinEfficiency: 0.1,
		WarmupPeriod:  128,
	}
}

func newTracker() *Tracker {
	cfg := DefaultTrackerConfig()
	return &Tracker{
		checkInterval: cfg.CheckInterval,
		minEfficiency: cfg.MinEfficiency,
		warmupPeriod:  cfg.WarmupPeriod,
	}
}

func (t *Tracker) recordShortlisted() {
	t.shortlisted.Add(1)
}

func (t *Tracker) recordConfirmed() {
	t.confirmed.Add(1)
}

// Stats reports this payload's shortlist/confirm counts, the resulting
// efficiency, and whether that efficiency meets the configured minimum.
// Effective is always true during the warmup period: there isn't enough
// data yet to conclude the hint is a poor fit.
func (t *Tracker) Stats() (shortlisted, confirmed uint64, efficiency float64, effective bool) {
	shortlisted = t.shortlisted.Load()
	confirmed = t.confirmed.Load()
	if shortlisted > 0 {
		efficiency = float64(confirmed) / float64(shortlisted)
	}
	effective = shortlisted < t.warmupPeriod || efficiency >= t.minEfficiency
	return
}
