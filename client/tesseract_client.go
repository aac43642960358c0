package client

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// DefaultTessdataPath is used when no tessdata directory is configured.
const DefaultTessdataPath = "/usr/share/tesseract-ocr/5/tessdata/"

// TesseractClient recognises statement page images for PDFs that carry no
// text layer.
type TesseractClient struct {
	dataPath string
	language string
}

func NewTesseractClient(dataPath string) *TesseractClient {
	if dataPath == "" {
		dataPath = DefaultTessdataPath
	}
	return &TesseractClient{
		dataPath: dataPath,
		language: "eng",
	}
}

// ExtractText runs OCR over the image at imagePath.
func (tc *TesseractClient) ExtractText(imagePath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetTessdataPrefix(tc.dataPath); err != nil {
		return "", fmt.Errorf("failed to set tessdata prefix: %w", err)
	}
	if err := client.SetLanguage(tc.language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	// Statement pages are laid out as tables; automatic segmentation keeps
	// each row on one output line.
	if err := client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}
	return text, nil
}
