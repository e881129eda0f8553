package spinner

// DefaultFrames is a block that fills and empties.
var DefaultFrames = []string{"▁", "▃", "▄", "▅", "▆", "▇", "█", "▇", "▆", "▅", "▄", "▃"}

var DancingKirby = []string{
	"(>'-')>",
	"<('-'<)",
	"^('-')^",
	"<('-'<)",
	"(>'-')>",
	"<('-'<)",
	"^('-')^",
	"<('-'<)",
}

var Braille = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// FrameSets names the built-in frame sequences.
var FrameSets = map[string][]string{
	"blocks":  DefaultFrames,
	"kirby":   DancingKirby,
	"braille": Braille,
}
