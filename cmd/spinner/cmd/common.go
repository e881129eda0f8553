package cmd

import "time"

var (
	flagDebug   bool
	flagNoColor bool
	flagStep    time.Duration
	flagPause   time.Duration
	flagFrames  string
)
