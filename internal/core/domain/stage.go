package domain

import "time"

// Stage identifies one step of the build pipeline. Stages run strictly in
// declaration order; a failing stage short-circuits all later ones.
type Stage int

const (
	StagePreflight Stage = iota
	StagePrepare
	StageConfigure
	StageCompile
	StageInstall
)

func (s Stage) String() string {
	switch s {
	case StagePreflight:
		return "preflight"
	case StagePrepare:
		return "prepare"
	case StageConfigure:
		return "configure"
	case StageCompile:
		return "compile"
	case StageInstall:
		return "install"
	default:
		return "unknown"
	}
}

// StageResult is the outcome of a single pipeline stage.
type StageResult struct {
	Stage    Stage
	Err      error
	Duration time.Duration
	// Skipped marks stages elided by the configure cache.
	Skipped bool
}
