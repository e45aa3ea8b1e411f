package test

import (
	"github.com/boussole-app/boussole/internal/orientation"
)

// loadedMsg is sent when session resolution and question fetch complete.
type loadedMsg struct {
	Err error
}

// advanceDoneMsg is sent when an answer submission finishes. The question
// and encoded value are captured at submit time for journaling.
type advanceDoneMsg struct {
	Question  orientation.Question
	ValueJSON string
	ElapsedMs int64
	Err       error
}

// finishDoneMsg is sent when session completion finishes.
type finishDoneMsg struct {
	Question  orientation.Question
	ValueJSON string
	ElapsedMs int64
	Submitted bool // whether the last answer was sent as part of finishing
	Err       error
}
