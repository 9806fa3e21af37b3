// Package extractor decodes receipt PDFs into plain text. It tries several
// extraction methods because the bank's receipt generator has changed font
// encodings between revisions, and some revisions defeat the structured
// library.
package extractor

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ExtractReceiptText reads a receipt PDF and returns its text content with
// pages joined. It tries the structured PDF library first and falls back to
// the external pdftotext command (poppler-utils) when the library fails or
// returns garbage. Unreadable output is never returned.
func ExtractReceiptText(filePath string) (string, error) {
	pages, libErr := extractWithLibrary(filePath)
	if libErr == nil && isReadableText(pages) {
		return strings.Join(pages, "\n"), nil
	}

	popplerPages, popplerErr := extractWithPdftotext(filePath)
	if popplerErr == nil && isReadableText(popplerPages) {
		return strings.Join(popplerPages, "\n"), nil
	}

	if libErr != nil {
		return "", fmt.Errorf("receipt text extraction failed: %v; the document may be image-based or use font encodings that cannot be decoded", libErr)
	}
	return "", fmt.Errorf("no readable text could be extracted from the receipt PDF")
}

// extractWithLibrary uses the ledongthuc/pdf library, trying row-based
// extraction first and plain-text extraction paths after that.
func extractWithLibrary(filePath string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(filePath)
	if openErr != nil {
		return nil, openErr
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	pages = extractByRow(r, numPages)
	if isReadableText(pages) {
		return pages, nil
	}

	pages = extractByPagePlainText(r, numPages)
	if isReadableText(pages) {
		return pages, nil
	}

	plainText := extractByReaderPlainText(r)
	if isReadableText([]string{plainText}) {
		return []string{plainText}, nil
	}

	return pages, nil
}

// extractByRow preserves line structure, which the field patterns rely on.
func extractByRow(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return pages
}

// extractByPagePlainText decodes each page with its font map.
func extractByPagePlainText(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fontNames := page.Fonts()
		fonts := make(map[string]*pdf.Font)
		for _, name := range fontNames {
			f := page.Font(name)
			fonts[name] = &f
		}

		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text != "" {
			pages = append(pages, text)
		}
	}
	return pages
}

// extractByReaderPlainText is a whole-document extraction path that
// sometimes succeeds where per-page decoding fails.
func extractByReaderPlainText(r *pdf.Reader) string {
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// extractWithPdftotext shells out to pdftotext as a last resort for
// receipts the Go library cannot decode.
func extractWithPdftotext(filePath string) ([]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not available: %v", err)
	}

	out, err := exec.Command("pdftotext", "-layout", filePath, "-").Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext failed: %v", err)
	}
	text := strings.TrimSpace(string(out))
	if text == "" {
		return nil, fmt.Errorf("pdftotext produced no output")
	}
	return []string{text}, nil
}

// receiptWords appear on every revision of the bank's receipt. If the
// extracted text contains none of them, the decode produced garbage.
var receiptWords = []string{
	"commercial bank", "cbe", "payer", "receiver", "payment",
	"reference", "amount", "account", "debited", "branch", "vat",
}

// containsReceiptWords checks whether the text has at least one word that
// would be expected on a receipt.
func containsReceiptWords(pages []string) bool {
	combined := strings.ToLower(strings.Join(pages, " "))
	for _, word := range receiptWords {
		if strings.Contains(combined, word) {
			return true
		}
	}
	return false
}

// textQuality returns the ratio of basic ASCII readable characters to total
// characters, 0.0-1.0. A strict ASCII check is used on purpose:
// unicode.IsLetter matches the accented garbage that identity-encoded fonts
// decode into.
func textQuality(pages []string) float64 {
	total := 0
	readable := 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				r == '.' || r == ',' || r == '-' || r == '/' || r == ':' ||
				r == ';' || r == '(' || r == ')' || r == '\'' || r == '"' ||
				r == '&' || r == '@' || r == '#' || r == '%' || r == '+' ||
				r == '=' || r == '*' || r == '\t' {
				readable++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

// isReadableText requires enough text, a high readable-character ratio, and
// at least one recognizable receipt word.
func isReadableText(pages []string) bool {
	if totalTextLen(pages) <= 50 {
		return false
	}
	if textQuality(pages) <= 0.6 {
		return false
	}
	return containsReceiptWords(pages)
}

func totalTextLen(pages []string) int {
	n := 0
	for _, p := range pages {
		n += len(strings.TrimSpace(p))
	}
	return n
}
