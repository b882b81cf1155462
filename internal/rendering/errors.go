package rendering

import "fmt"

// Stage names the rendering step that failed
type Stage string

const (
	StageLoad    Stage = "load"
	StageParse   Stage = "parse"
	StageData    Stage = "data"
	StageExecute Stage = "execute"
)

// RenderError reports a failed rendering step. Path is the template file when one was given.
type RenderError struct {
	Stage Stage
	Path  string
	Cause error
}

func (e *RenderError) Error() string {
	target := "bundled template"
	if e.Path != "" {
		target = e.Path
	}
	if e.Stage == StageData {
		target = "CV data"
	}
	return fmt.Sprintf("render %s %s: %v", e.Stage, target, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
