package audit

import "sirs/internal/score"

// Recorder stores computed estimates for offline analysis.
type Recorder interface {
	Record(session string, profile score.Document, result score.Result)
	Close() error
}

type discard struct{}

func (discard) Record(string, score.Document, score.Result) {}
func (discard) Close() error                                { return nil }

// Discard is a Recorder that drops everything.
var Discard Recorder = discard{}
