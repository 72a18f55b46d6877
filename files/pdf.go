package files

import (
	"bytes"
	"errors"

	pdf "rsc.io/pdf"
)

// ExtractPDFText opens a PDF at filePath and returns its text layer up to
// maxChars. PDFs without a text layer (pure scans) yield an error so the
// caller can tell the user to paste text instead — image OCR is out of scope
// here and lives upstream.
func ExtractPDFText(filePath string, maxChars int) (string, error) {
	if maxChars <= 0 {
		maxChars = 3000
	}

	r, err := pdf.Open(filePath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	total := r.NumPage()
	for pageIndex := 1; pageIndex <= total; pageIndex++ {
		p := r.Page(pageIndex)
		if p.V.IsNull() {
			continue
		}
		content := p.Content()
		for _, t := range content.Text {
			buf.WriteString(t.S)
		}
		buf.WriteString("\n\n")
		if buf.Len() >= maxChars {
			return buf.String()[:maxChars], nil
		}
	}

	if buf.Len() == 0 {
		return "", errors.New("pdf has no extractable text layer")
	}
	if buf.Len() > maxChars {
		return buf.String()[:maxChars], nil
	}
	return buf.String(), nil
}
