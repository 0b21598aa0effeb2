package constants

import "strings"

// FileFormat is the coarse media kind an uploaded receipt resolves to.
type FileFormat string

const (
	PDF   FileFormat = "PDF"
	Image FileFormat = "IMAGE"
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a file format. Only ".pdf"
// selects the PDF text layer; every other extension is handed to image OCR.
// Extension alone decides -- no content sniffing.
func MapExtToFormat(ext string) FileFormat {
	if NormalizeExt(ext) == "pdf" {
		return PDF
	}
	return Image
}
