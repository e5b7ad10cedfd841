package utils

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Stopwatch measures named sections of a tick; used to spot systems that
// blow the per-tick time budget.
type Stopwatch struct {
	name     string
	starts   map[string]time.Time
	elapsed  map[string]time.Duration
	sections []string
}

func MakeStopwatch(name string) Stopwatch {
	return Stopwatch{
		name:    name,
		starts:  make(map[string]time.Time),
		elapsed: make(map[string]time.Duration),
	}
}

func (watch *Stopwatch) Start(section string) {
	if _, seen := watch.elapsed[section]; !seen {
		watch.sections = append(watch.sections, section)
	}

	watch.starts[section] = time.Now()
}

func (watch *Stopwatch) Stop(section string) {
	started, ok := watch.starts[section]
	if !ok {
		return
	}

	watch.elapsed[section] += time.Since(started)
	delete(watch.starts, section)
}

func (watch Stopwatch) String() string {
	sections := make([]string, len(watch.sections))
	copy(sections, watch.sections)
	sort.Strings(sections)

	parts := make([]string, 0, len(sections))
	for _, section := range sections {
		parts = append(parts, fmt.Sprintf("%s=%.3fms", section, DurationMs(watch.elapsed[section])))
	}

	return watch.name + " " + strings.Join(parts, " ")
}

func DurationMs(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1000000.0
}
