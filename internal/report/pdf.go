package report

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Page geometry in PDF points (US Letter).
const (
	PageWidth   = 612
	PageHeight  = 792
	LineX       = 100
	FirstLineY  = 750
	LineSpacing = 20
	FontSize    = 12
)

// LineY is the baseline of the i-th line.
func LineY(i int) int {
	return FirstLineY - i*LineSpacing
}

// RenderPDF draws every line on one page at a fixed x and a fixed vertical
// step, top to bottom.
func RenderPDF(lines []string) ([]byte, error) {
	var content strings.Builder
	content.WriteString(fmt.Sprintf("BT\n/F1 %d Tf\n", FontSize))
	for i, line := range lines {
		// Tm sets an absolute position, so each line sits at its own offset.
		content.WriteString(fmt.Sprintf("1 0 0 1 %d %d Tm (%s) Tj\n", LineX, LineY(i), pdfEscape(line)))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		fmt.Sprintf("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n", PageWidth, PageHeight),
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

var literalEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"(", "\\(",
	")", "\\)",
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
)

// pdfEscape turns v into the bytes of a PDF literal string for a
// WinAnsiEncoding font. Line breaks would end the text run, so they are
// flattened to spaces. Runes outside Windows-1252 print as '?'.
func pdfEscape(v string) string {
	escaped := literalEscaper.Replace(v)
	out := make([]byte, 0, len(escaped))
	for _, r := range escaped {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return string(out)
}
