package ports

import "go.trai.ch/cuforge/internal/core/domain"

// Reporter renders pipeline progress for the user. It is a pure side
// effect: nothing the reporter does influences the exit status.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	StageStarted(stage domain.Stage)
	StageDone(result domain.StageResult)
	// Summary enumerates the expected artifact locations after a fully
	// successful run.
	Summary(buildDir string, installed bool, prefix string)
}
