package report_test

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"go-hrdesk/internal/report"

	"github.com/stretchr/testify/assert"
)

func TestRenderPDF_FixedOffsets(t *testing.T) {
	lines := []string{"Candidate: Ravi", "Date: 2026-03-02", "Decision: Reject"}

	out, err := report.RenderPDF(lines)
	assert.NoError(t, err)

	doc := string(out)
	assert.True(t, strings.HasPrefix(doc, "%PDF-1.4\n"))
	assert.True(t, strings.HasSuffix(doc, "%%EOF"))
	assert.Contains(t, doc, "/MediaBox [0 0 612 792]")
	assert.Contains(t, doc, "1 0 0 1 100 750 Tm (Candidate: Ravi) Tj")
	assert.Contains(t, doc, "1 0 0 1 100 730 Tm (Date: 2026-03-02) Tj")
	assert.Contains(t, doc, "1 0 0 1 100 710 Tm (Decision: Reject) Tj")
}

func TestRenderPDF_EscapesLiterals(t *testing.T) {
	out, err := report.RenderPDF([]string{`Remarks: (strong) \ fit`, "multi\nline"})
	assert.NoError(t, err)

	assert.Contains(t, string(out), `(Remarks: \(strong\) \\ fit) Tj`)
	assert.Contains(t, string(out), "(multi line) Tj")
}

func TestRenderPDF_XrefPointsAtObjects(t *testing.T) {
	out, err := report.RenderPDF([]string{"Candidate: Ravi"})
	assert.NoError(t, err)

	xref := bytes.Index(out, []byte("xref\n"))
	assert.Greater(t, xref, 0)

	entries := strings.Split(string(out[xref:]), "\n")[3:8]
	for i, entry := range entries {
		offset, convErr := strconv.Atoi(strings.Fields(entry)[0])
		assert.NoError(t, convErr)
		assert.True(t, bytes.HasPrefix(out[offset:], []byte(fmt.Sprintf("%d 0 obj", i+1))), "object %d", i+1)
	}
}

func TestLineY(t *testing.T) {
	assert.Equal(t, 750, report.LineY(0))
	assert.Equal(t, 490, report.LineY(13))
}

func TestRenderPDF_WinAnsiText(t *testing.T) {
	out, err := report.RenderPDF([]string{"Candidate: José Müller", "Remarks: 5€ ≈ Ω"})
	assert.NoError(t, err)

	assert.Contains(t, string(out), "(Candidate: Jos\xe9 M\xfcller) Tj")
	assert.Contains(t, string(out), "(Remarks: 5\x80 ? ?) Tj")
	assert.NotContains(t, string(out), "\xc3\xa9")
}
