package cli

var (
	verbose    bool
	configPath string

	// for replay command
	replayWait     bool
	replayRealtime bool
	replayFrames   bool

	// for simulate command
	simulateFrom     string
	simulateTo       string
	simulateWidth    float64
	simulateOffset   float64
	simulateDuration int64
	simulateFrames   bool
)
