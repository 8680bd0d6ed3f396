package navigation

import "time"

const (
	PlatformStages = 11

	// stages from this one onwards belong to the project-level row
	afterStage = 5
)

var (
	normalStageDuration = 1500 * time.Millisecond
	beforeHoldDuration  = 3 * time.Second
	loopHoldDuration    = 12 * time.Second
)

// StageCycle drives the platform comparison animation. Each stage reveals
// one more part of the diagram and the cycle restarts after the last one.
type StageCycle struct{}

// Duration is how long the given stage is held before moving on
func (StageCycle) Duration(stage int) time.Duration {
	switch stage {
	case afterStage - 1:
		return beforeHoldDuration
	case PlatformStages - 1:
		return loopHoldDuration
	default:
		return normalStageDuration
	}
}

func (StageCycle) Next(stage int) int {
	return (stage + 1) % PlatformStages
}

// Period is the length of a full cycle
func (s StageCycle) Period() time.Duration {
	var total time.Duration
	for i := 0; i < PlatformStages; i++ {
		total += s.Duration(i)
	}
	return total
}

// At returns the stage shown once elapsed has passed since stage 0
func (s StageCycle) At(elapsed time.Duration) int {
	if elapsed < 0 {
		return 0
	}
	elapsed %= s.Period()
	stage := 0
	for elapsed >= s.Duration(stage) {
		elapsed -= s.Duration(stage)
		stage = s.Next(stage)
	}
	return stage
}

// Durations lists every stage duration in order
func (s StageCycle) Durations() []time.Duration {
	out := make([]time.Duration, PlatformStages)
	for i := range out {
		out[i] = s.Duration(i)
	}
	return out
}

// Visible reports whether the element revealed at step s is shown at stage
func Visible(stage, s int) bool { return stage >= s }

// BeforeActive reports whether the independent-systems row is highlighted
func BeforeActive(stage int) bool { return stage >= 1 && stage < afterStage }

// AfterActive reports whether the project-level row is highlighted
func AfterActive(stage int) bool { return stage >= afterStage }
