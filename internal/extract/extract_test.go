package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat_KnownExtensions(t *testing.T) {
	assert.Equal(t, FormatDocx, DetectFormat("resume.docx"))
	assert.Equal(t, FormatDocx, DetectFormat("Resume.DOCX"))
	assert.Equal(t, FormatPDF, DetectFormat("resume.pdf"))
	assert.Equal(t, FormatText, DetectFormat("resume.txt"))
}

func TestDetectFormat_UnknownExtension(t *testing.T) {
	assert.Equal(t, Format("odt"), DetectFormat("resume.odt"))
	assert.Equal(t, Format(""), DetectFormat("resume"))
}

func TestText_PlainTextPassthrough(t *testing.T) {
	got, err := Text([]byte("John Doe\njohn@example.com"), FormatText)

	require.NoError(t, err)
	assert.Equal(t, "John Doe\njohn@example.com", got)
}

func TestText_PDFRejectedWithGuidance(t *testing.T) {
	_, err := Text([]byte("%PDF-1.7"), FormatPDF)

	require.Error(t, err)
	var ufe *UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, FormatPDF, ufe.Format)
	assert.Contains(t, ufe.Error(), "DOCX")
}

func TestText_UnknownFormatRejected(t *testing.T) {
	_, err := Text([]byte("data"), Format("odt"))

	require.Error(t, err)
	var ufe *UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, Format("odt"), ufe.Format)
}

func TestText_CorruptDocxReturnsExtractionError(t *testing.T) {
	_, err := Text([]byte("not a zip archive"), FormatDocx)

	require.Error(t, err)
	var ee *ExtractionError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, FormatDocx, ee.Format)
}

func TestFlattenDocumentXML_ParagraphsBecomeLines(t *testing.T) {
	content := `<w:body><w:p><w:r><w:t>WORK EXPERIENCE</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Led a team of 5 engineers</w:t></w:r></w:p></w:body>`

	got := flattenDocumentXML(content)

	assert.Equal(t, "WORK EXPERIENCE\nLed a team of 5 engineers", got)
}

func TestFlattenDocumentXML_DecodesEntities(t *testing.T) {
	content := `<w:p><w:r><w:t>R&amp;D engineer &lt;backend&gt;</w:t></w:r></w:p>`

	got := flattenDocumentXML(content)

	assert.Equal(t, "R&D engineer <backend>", got)
}

func TestFlattenDocumentXML_TableRowsBecomeLines(t *testing.T) {
	content := `<w:tbl><w:tr><w:tc><w:p><w:r><w:t>Skills</w:t></w:r></w:p></w:tc></w:tr>` +
		`<w:tr><w:tc><w:p><w:r><w:t>Go, Python</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`

	got := flattenDocumentXML(content)

	assert.Contains(t, got, "Skills")
	assert.Contains(t, got, "Go, Python")
}
