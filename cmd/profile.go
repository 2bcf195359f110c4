package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/profile"
)

var profileModes = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

var profiler interface{ Stop() }

func profileModeNames() string {
	names := make([]string, 0, len(profileModes))
	for name := range profileModes {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// startProfile starts the profiler in the named mode.  An empty mode
// disables profiling.
func startProfile(mode, dir string) error {
	if mode == "" {
		return nil
	}
	fn, ok := profileModes[mode]
	if !ok {
		return fmt.Errorf("unknown profile mode %q: expected one of %s", mode, profileModeNames())
	}
	profiler = profile.Start(fn, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook)
	return nil
}

func stopProfile() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}
