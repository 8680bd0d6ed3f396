package navigation

// ClientConfig is the interaction model handed to the browser scripts as
// JSON so the keymap, thresholds and timings stay defined in one place.
type ClientConfig struct {
	Keys             map[string]Action `json:"keys"`
	VisibleThreshold float64           `json:"visible_threshold,omitempty"`
	Sections         int               `json:"sections"`
	Carousel         *CarouselConfig   `json:"carousel,omitempty"`
	StageDurationsMS []int64           `json:"stage_durations_ms,omitempty"`
}

type CarouselConfig struct {
	Steps      int   `json:"steps"`
	IntervalMS int64 `json:"interval_ms"`
	Radius     int   `json:"radius"`
}

// CarouselRadius is the node circle radius in pixels
const CarouselRadius = 170

// ProjectsConfig is the timeline page configuration
func ProjectsConfig(sections int) ClientConfig {
	return ClientConfig{
		Keys:     copyKeys(ProjectKeys),
		Sections: sections,
	}
}

// DeckConfig is the presentation deck configuration
func DeckConfig(slides int) ClientConfig {
	c := NewCarousel(DefaultCarouselSteps, DefaultCarouselInterval)
	var stages StageCycle
	durations := make([]int64, 0, PlatformStages)
	for _, d := range stages.Durations() {
		durations = append(durations, d.Milliseconds())
	}
	return ClientConfig{
		Keys:             copyKeys(DeckKeys),
		VisibleThreshold: VisibleThreshold,
		Sections:         slides,
		Carousel: &CarouselConfig{
			Steps:      c.Steps(),
			IntervalMS: c.Interval().Milliseconds(),
			Radius:     CarouselRadius,
		},
		StageDurationsMS: durations,
	}
}

func copyKeys(k Keymap) map[string]Action {
	out := make(map[string]Action, len(k))
	for key, a := range k {
		out[key] = a
	}
	return out
}
