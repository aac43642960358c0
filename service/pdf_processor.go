package service

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/Aashish23092/cas-parser/utils/cas"
)

// PDFProcessor turns an uploaded statement into ordered page texts.
type PDFProcessor interface {
	ExtractPages(pdfData []byte, password string) ([]string, error)
}

// OCRClient recognises text in a page image on disk.
type OCRClient interface {
	ExtractText(imagePath string) (string, error)
}

// wordGap is the horizontal distance, in points, above which two text runs
// on a row are treated as separate words.
const wordGap = 1.0

type pdfProcessor struct {
	ocr    OCRClient
	logger *slog.Logger
}

// NewPDFProcessor returns a processor. ocr may be nil, in which case
// image-only statements yield no text.
func NewPDFProcessor(ocr OCRClient, logger *slog.Logger) PDFProcessor {
	return &pdfProcessor{ocr: ocr, logger: logger}
}

func (p *pdfProcessor) ExtractPages(pdfData []byte, password string) ([]string, error) {
	plain, err := decrypt(pdfData, password)
	if err != nil {
		return nil, err
	}

	pages, err := readPages(plain, p.logger)
	if err != nil {
		// An encrypted file that survived decrypt unchanged, or a damaged
		// one, is reported the same way as a wrong password.
		return nil, fmt.Errorf("%w: %v", cas.ErrCredential, err)
	}

	if strings.TrimSpace(strings.Join(pages, "")) == "" && p.ocr != nil {
		p.logger.Info("PDF has no text layer, attempting OCR", "pages", len(pages))
		pages, err = p.ocrPages(plain)
		if err != nil {
			return nil, err
		}
	}
	return pages, nil
}

// decrypt removes the statement password. Registrars use the investor PAN as
// the user password, so it is supplied as both user and owner password.
func decrypt(pdfData []byte, password string) ([]byte, error) {
	if password == "" {
		return pdfData, nil
	}

	conf := model.NewDefaultConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password

	var out bytes.Buffer
	if err := api.Decrypt(bytes.NewReader(pdfData), &out, conf); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not encrypted") {
			return pdfData, nil
		}
		return nil, fmt.Errorf("%w: %v", cas.ErrCredential, err)
	}
	return out.Bytes(), nil
}

func readPages(data []byte, logger *slog.Logger) (pages []string, err error) {
	// ledongthuc/pdf panics on some malformed object streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to read PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	total := r.NumPage()
	pages = make([]string, 0, total)
	for pageIndex := 1; pageIndex <= total; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			logger.Warn("failed to read page text", "page", pageIndex, "error", err)
			pages = append(pages, "")
			continue
		}
		pages = append(pages, rowsToText(rows))
	}
	return pages, nil
}

func rowsToText(rows pdf.Rows) string {
	var b strings.Builder
	for _, row := range rows {
		var prev *pdf.Text
		for i := range row.Content {
			word := row.Content[i]
			if prev != nil && word.X-(prev.X+prev.W) > wordGap {
				b.WriteString(" ")
			}
			b.WriteString(word.S)
			prev = &row.Content[i]
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ocrPages extracts embedded page images with pdfcpu and recognises each.
func (p *pdfProcessor) ocrPages(pdfData []byte) ([]string, error) {
	tempDir, err := os.MkdirTemp("", "cas_pages")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	tempFile := filepath.Join(tempDir, "statement.pdf")
	if err := os.WriteFile(tempFile, pdfData, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write pdf data: %w", err)
	}

	imageDir := filepath.Join(tempDir, "images")
	if err := os.Mkdir(imageDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create image dir: %w", err)
	}
	if err := api.ExtractImagesFile(tempFile, imageDir, nil, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("failed to extract images: %w", err)
	}

	entries, err := os.ReadDir(imageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	pages := make([]string, 0, len(names))
	for _, name := range names {
		text, err := p.ocr.ExtractText(filepath.Join(imageDir, name))
		if err != nil {
			p.logger.Warn("OCR failed for page image", "image", name, "error", err)
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}
