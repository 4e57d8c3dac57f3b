package styles_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/legible-dev/legible/internal/cli/styles"
	"github.com/legible-dev/legible/internal/domain/entity"
)

func testReport() *entity.Report {
	report := entity.NewReport("page.html", "aa")
	report.Findings = []entity.Finding{
		{
			Path:            "html > body > p",
			TextColor:       "rgb(0, 0, 0)",
			BackgroundColor: "rgb(255, 255, 255)",
			Ratio:           21,
			Required:        4.5,
			Verdict:         entity.VerdictPass,
		},
		{
			Path:            "html > body > p.dim",
			TextColor:       "rgb(170, 170, 170)",
			BackgroundColor: "rgb(255, 255, 255)",
			Ratio:           2.32,
			Required:        4.5,
			Verdict:         entity.VerdictFail,
			Suggestion:      "rgb(104, 104, 104)",
		},
		{
			Path:            "html > body > span",
			TextColor:       "rgb(0, 0, 0)",
			BackgroundColor: "rgba(0, 0, 0, 0)",
			Verdict:         entity.VerdictIndeterminate,
			Note:            "background transparent up to the root",
			NoteSeverity:    "warning",
		},
	}
	report.Duration = 3 * time.Millisecond
	return report
}

func TestReportRendererRender(t *testing.T) {
	r := styles.NewReportRenderer(styles.NewTheme())

	report := testReport()
	out := r.Render(report)

	assert.Contains(t, out, "page.html")
	assert.Contains(t, out, "AA")
	assert.Contains(t, out, "html > body > p.dim")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "not measurable")
	assert.Contains(t, out, "try ")
	assert.Contains(t, out, "1 passed")
	assert.Contains(t, out, "1 failed")
	assert.Contains(t, out, "1 indeterminate")
	assert.Contains(t, out, "worst 2.32:1")
	assert.Contains(t, out, report.Duration.Round(time.Millisecond).String())
}

func TestReportRendererRenderEmpty(t *testing.T) {
	r := styles.NewReportRenderer(styles.NewTheme())

	out := r.Render(entity.NewReport("empty.html", "aa"))
	assert.Contains(t, out, "no text-bearing nodes found")
}

func TestRenderFindingDetail(t *testing.T) {
	r := styles.NewReportRenderer(styles.NewTheme())

	out := r.RenderFindingDetail(testReport().Findings[1])

	assert.Contains(t, out, "html > body > p.dim")
	assert.Contains(t, out, "2.32:1, needs 4.5:1")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "rgb(104, 104, 104)")
}

func TestRenderFindingDetailAssumed(t *testing.T) {
	r := styles.NewReportRenderer(styles.NewTheme())

	out := r.RenderFindingDetail(entity.Finding{
		Path:            "html > body > p",
		TextColor:       "rgb(255, 255, 255)",
		BackgroundColor: "rgba(0, 0, 0, 0)",
		Ratio:           21,
		Required:        4.5,
		Verdict:         entity.VerdictPass,
		Assumed:         true,
	})

	assert.Contains(t, out, "assumed backdrop")
}

func TestRenderDetection(t *testing.T) {
	r := styles.NewReportRenderer(styles.NewTheme())

	out := r.RenderDetection(&entity.DetectionResult{
		TextColor:       "rgb(0, 0, 0)",
		BackgroundColor: "rgb(255, 255, 255)",
	})

	assert.Contains(t, out, "rgb(0, 0, 0)")
	assert.Contains(t, out, "rgb(255, 255, 255)")
}
