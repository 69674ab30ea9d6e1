package report_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cuforge/internal/adapters/report"
	"go.trai.ch/cuforge/internal/core/domain"
)

func TestReporter_StageLines(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := report.NewReporter(&buf)

	r.StageStarted(domain.StageConfigure)
	r.StageDone(domain.StageResult{Stage: domain.StageConfigure, Duration: 1200 * time.Millisecond})
	r.StageDone(domain.StageResult{Stage: domain.StageCompile, Err: errors.New("boom"), Duration: time.Second})
	r.StageDone(domain.StageResult{Stage: domain.StageConfigure, Skipped: true})

	out := buf.String()
	assert.Contains(t, out, "configure")
	assert.Contains(t, out, "1.2s")
	assert.Contains(t, out, "compile failed after")
	assert.Contains(t, out, "up to date")
}

func TestReporter_Summary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := report.NewReporter(&buf)

	r.Summary("/p/build", false, "")
	out := buf.String()
	assert.Contains(t, out, "build complete")
	assert.Contains(t, out, "/p/build/lib")
	assert.Contains(t, out, "/p/build/examples")
	assert.Contains(t, out, "/p/build/tests")
	assert.NotContains(t, out, "installed:")
}

func TestReporter_SummaryWithInstall(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := report.NewReporter(&buf)

	r.Summary("/p/build", true, "/opt/lib")
	assert.Contains(t, buf.String(), "installed: /opt/lib")
}
