package extract

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte("PK\x03\x04")
)

// Text extracts plain text from an uploaded payload. PDF pages are walked
// individually and a failing page is skipped; a DOCX body is unpacked; anything
// else is decoded as UTF-8 with invalid sequences replaced. Extraction never
// fails: when a structured parse goes wrong the raw bytes are decoded instead.
func Text(data []byte) string {
	var text string
	switch {
	case bytes.HasPrefix(data, pdfMagic):
		text = extractPDF(data)
	case bytes.HasPrefix(data, zipMagic):
		text = extractDOCX(data)
	default:
		text = decodeLossy(data)
	}
	return normalizeLines(text)
}

func extractPDF(data []byte) (text string) {
	// The pdf package panics on some malformed inputs; treat a panic like a
	// reader error and fall back to the raw bytes.
	defer func() {
		if rec := recover(); rec != nil {
			text = decodeLossy(data)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return decodeLossy(data)
	}

	var pieces []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil || pageText == "" {
			continue
		}
		pieces = append(pieces, pageText)
	}
	return strings.Join(pieces, "\n")
}

func extractDOCX(data []byte) string {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return decodeLossy(data)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	return flattenXML(content)
}

// flattenXML strips WordprocessingML markup, keeping character data and
// paragraph breaks.
func flattenXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return buf.String()
}

func decodeLossy(data []byte) string {
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

func normalizeLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
