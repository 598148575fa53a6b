// format_test.go — verification of report rendering, frame ordering policy,
// and fmt.Formatter behavior.
package xgxtrace

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// --- Instrumented chain: alpha → beta → gamma, gamma fails -------------------

func orderingAlpha(ctx context.Context) error {
	defer Scope(ctx)()
	return orderingBeta(ctx)
}

func orderingBeta(ctx context.Context) error {
	defer Scope(ctx)()
	return orderingGamma(ctx)
}

func orderingGamma(ctx context.Context) error {
	defer Scope(ctx)()
	return New(ctx, "gamma failed", lookupFailure{Entity: "widget", ID: 3})
}

func TestReport_RecordedOrderingScenario(t *testing.T) {
	t.Parallel()
	recordedTierOnly(t)

	rec := NewRecorder()
	ctx := NewContext(context.Background(), rec)

	err := orderingAlpha(ctx)
	c, ok := As[lookupFailure](err)
	if !ok {
		t.Fatalf("expected a carrier, got %T", err)
	}

	report := c.Report()
	if !strings.HasPrefix(report, "Exception: gamma failed\nLocation: ") {
		t.Fatalf("report header mismatch:\n%s", report)
	}
	if !strings.Contains(report, "\nStack trace:\n") {
		t.Fatalf("missing stack-trace section:\n%s", report)
	}

	ia := strings.Index(report, "orderingAlpha")
	ib := strings.Index(report, "orderingBeta")
	ig := strings.Index(report, "orderingGamma")
	if ia < 0 || ib < 0 || ig < 0 {
		t.Fatalf("instrumented frames missing from report:\n%s", report)
	}
	// gamma appears on the Location line too; compare within the trace body.
	body := report[strings.Index(report, "Stack trace:"):]
	ia, ib, ig = strings.Index(body, "orderingAlpha"), strings.Index(body, "orderingBeta"), strings.Index(body, "orderingGamma")
	if !(ia < ib && ib < ig) {
		t.Fatalf("oldest-first ordering violated (alpha=%d beta=%d gamma=%d):\n%s", ia, ib, ig, report)
	}

	// Each frame carries its own file/line rendering.
	for _, line := range strings.Split(body, "\n")[1:] {
		if _, perr := ParseFrameString(line); perr != nil {
			t.Fatalf("trace line %q does not parse: %v", line, perr)
		}
	}
}

func TestReportWith_NewestFirstFlipsRendering(t *testing.T) {
	t.Parallel()
	recordedTierOnly(t)

	rec := NewRecorder()
	ctx := NewContext(context.Background(), rec)

	err := orderingAlpha(ctx)
	c, _ := As[lookupFailure](err)

	report := c.ReportWith(NewestFirst)
	body := report[strings.Index(report, "Stack trace:"):]
	ia := strings.Index(body, "orderingAlpha")
	ig := strings.Index(body, "orderingGamma")
	if !(ig < ia) {
		t.Fatalf("newest-first ordering violated:\n%s", report)
	}
}

func TestReport_LocationLineRoundTrips(t *testing.T) {
	t.Parallel()

	c := New(context.Background(), "boom", 0)
	lines := strings.Split(c.Report(), "\n")
	if len(lines) < 2 || !strings.HasPrefix(lines[1], "Location: ") {
		t.Fatalf("malformed report:\n%s", c.Report())
	}
	parsed, err := ParseFrameString(strings.TrimPrefix(lines[1], "Location: "))
	if err != nil {
		t.Fatalf("parse location line: %v", err)
	}
	if parsed != c.Location() {
		t.Fatalf("location round trip: want %#v, got %#v", c.Location(), parsed)
	}
}

func TestReport_EmptyRecordedTraceOmitsSection(t *testing.T) {
	t.Parallel()
	recordedTierOnly(t)

	// No recorder installed → empty snapshot → no stack-trace section.
	c := New(context.Background(), "boom", 0)
	if strings.Contains(c.Report(), "Stack trace:") {
		t.Fatalf("empty trace must omit the section:\n%s", c.Report())
	}
}

func TestRenderReport_LocationTierOmitsSection(t *testing.T) {
	t.Parallel()

	creation := Capture()
	tr := locationStrategy{}.capture(nil, creation, 0)

	var sb strings.Builder
	renderReport(&sb, "constrained boom", creation, tr, OldestFirst)
	report := sb.String()

	want := "Exception: constrained boom\nLocation: " + creation.String()
	if report != want {
		t.Fatalf("location-tier report:\nwant %q\ngot  %q", want, report)
	}
}

func TestRenderTrace_Orderings(t *testing.T) {
	t.Parallel()

	tr := Trace{
		captureTier: TierRecorded,
		frames: []Frame{
			testFrame("first", 1),
			testFrame("second", 2),
		},
	}

	oldest := RenderTrace(tr, OldestFirst)
	if !(strings.Index(oldest, "first") < strings.Index(oldest, "second")) {
		t.Fatalf("oldest-first: %q", oldest)
	}
	newest := RenderTrace(tr, NewestFirst)
	if !(strings.Index(newest, "second") < strings.Index(newest, "first")) {
		t.Fatalf("newest-first: %q", newest)
	}
	if n := strings.Count(oldest, "\n"); n != 1 {
		t.Fatalf("two frames must render as two lines, got %d newlines", n)
	}

	if RenderTrace(Trace{captureTier: TierRecorded}, OldestFirst) != "" {
		t.Fatalf("empty trace must render empty")
	}
}

func TestFormatter_Verbs(t *testing.T) {
	t.Parallel()

	c := New(context.Background(), "boom", 0)

	if got := fmt.Sprintf("%v", c); got != "boom" {
		t.Fatalf("%%v: got %q", got)
	}
	if got := fmt.Sprintf("%s", c); got != "boom" {
		t.Fatalf("%%s: got %q", got)
	}
	if got := fmt.Sprintf("%q", c); got != `"boom"` {
		t.Fatalf("%%q: got %q", got)
	}
	if got := fmt.Sprintf("%+v", c); got != c.Report() {
		t.Fatalf("%%+v must equal Report():\n%q\nvs\n%q", got, c.Report())
	}
}
