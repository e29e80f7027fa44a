// Package extract converts uploaded resume files into plain text for the
// analysis pipeline. DOCX is the one supported binary format; PDF uploads are
// detected and rejected with a message telling the caller what to send
// instead.
package extract

import (
	"bytes"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// Format identifies a resume file format declared by the caller.
type Format string

const (
	FormatText Format = "txt"
	FormatDocx Format = "docx"
	FormatPDF  Format = "pdf"
)

// DetectFormat maps a filename to its declared format by extension.
// Unknown extensions are returned as-is so error messages can name them.
func DetectFormat(filename string) Format {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return Format(ext)
}

// Text extracts plain text from a resume file of the declared format.
//
// DOCX content is flattened: paragraphs become lines, list items keep their
// text but lose list markup, and tables are read cell by cell in document
// order. PDF is intentionally unsupported; callers get an
// *UnsupportedFormatError whose message suggests uploading a DOCX export.
func Text(data []byte, format Format) (string, error) {
	switch format {
	case FormatText:
		return string(data), nil
	case FormatDocx:
		return docxText(data)
	case FormatPDF:
		return "", &UnsupportedFormatError{
			Format:  FormatPDF,
			Message: "PDF resumes cannot be parsed; please upload a DOCX export of your resume instead",
		}
	default:
		return "", &UnsupportedFormatError{
			Format:  format,
			Message: "supported formats are docx and txt",
		}
	}
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{
			Format:  FormatDocx,
			Message: "failed to open document archive",
			Cause:   err,
		}
	}
	defer doc.Close()

	return flattenDocumentXML(doc.Editable().GetContent()), nil
}

var (
	paragraphEndPattern = regexp.MustCompile(`</w:p>`)
	tagPattern          = regexp.MustCompile(`<[^>]+>`)
	trailingSpace       = regexp.MustCompile(`[ \t]+\n`)
)

// flattenDocumentXML reduces WordprocessingML to plain text: paragraph and
// row boundaries become newlines, all other markup is stripped, and XML
// entities are decoded.
func flattenDocumentXML(content string) string {
	text := paragraphEndPattern.ReplaceAllString(content, "\n")
	text = strings.ReplaceAll(text, "</w:tr>", "\n")
	text = tagPattern.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = trailingSpace.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}
