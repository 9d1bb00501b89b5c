// plugins/stats/stats.go
package stats

import (
	"fmt"

	"github.com/bethropolis/stepsort/internal/plugin"
)

// Ensure Stats implements plugin.Plugin
var _ plugin.Plugin = (*Stats)(nil)

// Stats reports how a run compares with the worst case.
type Stats struct {
	api plugin.API
}

// New creates a new instance of the Stats plugin.
func New() plugin.Plugin {
	return &Stats{}
}

// Name returns the unique name of the plugin.
func (p *Stats) Name() string {
	return "stats"
}

// Initialize registers the :stats command.
func (p *Stats) Initialize(api plugin.API) error {
	p.api = api
	if err := api.RegisterCommand("stats", p.executeStats); err != nil {
		return fmt.Errorf("failed to register 'stats' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this plugin).
func (p *Stats) Shutdown() error {
	return nil
}

func (p *Stats) executeStats(args []string) error {
	if p.api == nil {
		return fmt.Errorf("stats plugin not initialized with API")
	}
	p.api.SetStatusMessage("%s", Report(p.api.Stats(), p.api.Values()))
	return nil
}

// Report formats counters against the n(n-1)/2 worst case, plus the
// inversions still left in values.
func Report(s plugin.Stats, values []int) string {
	worst := s.Count * (s.Count - 1) / 2
	if s.Count < 2 {
		worst = 0
	}
	return fmt.Sprintf("%s, n=%d: comparisons %d/%d, swaps %d/%d, inversions left %d",
		s.Algorithm, s.Count, s.Comparisons, worst, s.Swaps, worst, Inversions(values))
}

// Inversions counts pairs i<j with values[i] > values[j].
func Inversions(values []int) int {
	count := 0
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if values[i] > values[j] {
				count++
			}
		}
	}
	return count
}
