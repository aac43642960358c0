package dto

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
)

// OutputFormat selects how a parsed statement is returned.
type OutputFormat string

const (
	OutputJSON  OutputFormat = "json"
	OutputExcel OutputFormat = "excel"
)

var (
	ErrFileRequired      = errors.New("file is required")
	ErrPasswordRequired  = errors.New("password is required")
	ErrOnlyPDF           = errors.New("only PDF files are supported")
	ErrInvalidOutput     = errors.New("output format must be 'json' or 'excel'")
	ErrFileTooLarge      = errors.New("file exceeds maximum size")
	ErrMetadataRequired  = errors.New("metadata is required")
	ErrNoDocumentsListed = errors.New("metadata lists no documents")
)

// CASParseRequest represents a single statement upload
type CASParseRequest struct {
	File         *multipart.FileHeader
	Password     string
	OutputFormat OutputFormat
}

// Validate checks the upload against the configured size limit.
func (r *CASParseRequest) Validate(maxFileSize int64) error {
	if r.File == nil {
		return ErrFileRequired
	}
	if r.Password == "" {
		return ErrPasswordRequired
	}
	if !strings.HasSuffix(strings.ToLower(r.File.Filename), ".pdf") {
		return ErrOnlyPDF
	}
	if r.OutputFormat == "" {
		r.OutputFormat = OutputJSON
	}
	r.OutputFormat = OutputFormat(strings.ToLower(string(r.OutputFormat)))
	if r.OutputFormat != OutputJSON && r.OutputFormat != OutputExcel {
		return ErrInvalidOutput
	}
	if maxFileSize > 0 && r.File.Size > maxFileSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, r.File.Size, maxFileSize)
	}
	return nil
}

// DocumentMeta pairs an uploaded filename with its password.
type DocumentMeta struct {
	Filename string `json:"filename"`
	Password string `json:"password"`
}

type BatchMetadata struct {
	Documents []DocumentMeta `json:"documents"`
}

// CASBatchRequest represents several statements uploaded together
type CASBatchRequest struct {
	Files    []*multipart.FileHeader
	Metadata string
}

func (r *CASBatchRequest) Validate() error {
	if len(r.Files) == 0 {
		return ErrFileRequired
	}
	if r.Metadata == "" {
		return ErrMetadataRequired
	}
	return nil
}
