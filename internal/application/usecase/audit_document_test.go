package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legible-dev/legible/internal/application/port"
	"github.com/legible-dev/legible/internal/application/usecase"
	"github.com/legible-dev/legible/internal/domain/contrast"
	"github.com/legible-dev/legible/internal/domain/entity"
)

func newAudit(tree *fakeTree, rules port.RuleEngine) *usecase.AuditDocumentUseCase {
	detect := usecase.NewDetectColorsUseCase(tree, tree)
	checker := contrast.Checker{Level: contrast.LevelAA}
	return usecase.NewAuditDocumentUseCase(tree, detect, checker, rules)
}

func auditNodes() []port.RenderedNode {
	body := &fakeNode{kind: port.KindElement, background: "rgb(255, 255, 255)"}
	passing := &fakeNode{
		kind: port.KindElement, parent: body,
		text: "rgb(0, 0, 0)", background: entity.Transparent,
		path: "body > p", sizePx: 16,
	}
	failing := &fakeNode{
		kind: port.KindElement, parent: body,
		text: "rgb(119, 119, 119)", background: "rgb(255, 255, 255)",
		path: "body > div > span", sizePx: 16,
	}
	floating := &fakeNode{
		kind: port.KindElement,
		text: "rgb(0, 0, 0)", background: entity.Transparent,
		path: "body > footer", sizePx: 16,
	}
	return []port.RenderedNode{passing, failing, floating}
}

func TestAuditDocument(t *testing.T) {
	tree := &fakeTree{}
	uc := newAudit(tree, nil)

	report, err := uc.Execute(testContext(), usecase.AuditDocumentInput{
		Document: "page.html",
		Nodes:    auditNodes(),
	})
	require.NoError(t, err)

	assert.Equal(t, "page.html", report.Document)
	assert.Equal(t, "aa", report.Level)
	require.Len(t, report.Findings, 3)

	passed, failed, indeterminate := report.Counts()
	assert.Equal(t, 1, passed)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, indeterminate)

	assert.Equal(t, entity.VerdictPass, report.Findings[0].Verdict)
	assert.Equal(t, "body > p", report.Findings[0].Path)
	assert.Equal(t, entity.ResolvedColor("rgb(255, 255, 255)"), report.Findings[0].BackgroundColor,
		"the walk resolves the body background behind transparent nodes")

	assert.Equal(t, entity.VerdictFail, report.Findings[1].Verdict)
	assert.Equal(t, entity.VerdictIndeterminate, report.Findings[2].Verdict)
	assert.True(t, report.Failed())
}

func TestAuditDocumentSuggestions(t *testing.T) {
	tree := &fakeTree{}
	uc := newAudit(tree, nil)

	report, err := uc.Execute(testContext(), usecase.AuditDocumentInput{
		Document: "page.html",
		Nodes:    auditNodes(),
		Suggest:  true,
	})
	require.NoError(t, err)
	require.Len(t, report.Findings, 3)

	assert.Empty(t, report.Findings[0].Suggestion, "passing findings carry no suggestion")
	assert.NotEmpty(t, report.Findings[1].Suggestion)
	assert.Empty(t, report.Findings[2].Suggestion, "indeterminate findings carry no suggestion")
}

func TestAuditDocumentUnparseableColors(t *testing.T) {
	tree := &fakeTree{}
	uc := newAudit(tree, nil)

	broken := &fakeNode{
		kind: port.KindElement,
		text: "color(display-p3 1 0 0)", background: "rgb(255, 255, 255)",
		path: "body > h1", sizePx: 32,
	}

	report, err := uc.Execute(testContext(), usecase.AuditDocumentInput{
		Document: "page.html",
		Nodes:    []port.RenderedNode{broken},
	})
	require.NoError(t, err, "one bad node must not abort the audit")
	require.Len(t, report.Findings, 1)

	assert.Equal(t, entity.VerdictIndeterminate, report.Findings[0].Verdict)
	assert.Equal(t, "warning", report.Findings[0].NoteSeverity)
	assert.NotEmpty(t, report.Findings[0].Note)
}

func TestAuditDocumentRuleNotes(t *testing.T) {
	tree := &fakeTree{}
	rules := &fakeRules{note: port.RuleNote{Severity: "info", Message: "check manually"}, ok: true}
	uc := newAudit(tree, rules)

	report, err := uc.Execute(testContext(), usecase.AuditDocumentInput{
		Document: "page.html",
		Nodes:    auditNodes(),
	})
	require.NoError(t, err)

	assert.Equal(t, len(report.Findings), rules.calls)
	for _, f := range report.Findings {
		assert.Equal(t, "check manually", f.Note)
	}
}

func TestAuditDocumentBatch(t *testing.T) {
	tree := &fakeTree{}
	uc := newAudit(tree, nil)

	inputs := []usecase.AuditDocumentInput{
		{Document: "a.html", Nodes: auditNodes()},
		{Document: "b.html", Nodes: auditNodes()[:1]},
	}

	reports, err := uc.ExecuteBatch(testContext(), inputs)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "a.html", reports[0].Document)
	assert.Len(t, reports[0].Findings, 3)
	assert.Equal(t, "b.html", reports[1].Document)
	assert.Len(t, reports[1].Findings, 1)
}

func TestAuditDocumentBatchCanceled(t *testing.T) {
	tree := &fakeTree{}
	uc := newAudit(tree, nil)

	ctx, cancel := context.WithCancel(testContext())
	cancel()

	_, err := uc.ExecuteBatch(ctx, []usecase.AuditDocumentInput{
		{Document: "a.html", Nodes: auditNodes()},
	})
	assert.Error(t, err)
}
