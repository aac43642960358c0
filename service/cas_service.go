package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Aashish23092/cas-parser/dto"
	"github.com/Aashish23092/cas-parser/utils/cas"
)

// CASService runs page-text extraction and the statement parser for
// uploaded documents.
type CASService struct {
	pdfProcessor     PDFProcessor
	logger           *slog.Logger
	batchConcurrency int
}

func NewCASService(pdfProcessor PDFProcessor, logger *slog.Logger, batchConcurrency int) *CASService {
	if batchConcurrency < 1 {
		batchConcurrency = 1
	}
	return &CASService{
		pdfProcessor:     pdfProcessor,
		logger:           logger,
		batchConcurrency: batchConcurrency,
	}
}

// Parse extracts one statement. Returned errors wrap cas.ErrCredential,
// cas.ErrUnrecognizedFormat, cas.ErrEmptyDocument or the context error;
// anything else is an internal failure.
func (s *CASService) Parse(ctx context.Context, in dto.CASParseInput) (*dto.CASData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := s.logger.With("file", in.Filename)
	pages, err := s.pdfProcessor.ExtractPages(in.Data, in.Password)
	if err != nil {
		logger.Warn("page text extraction failed", "error", err)
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := cas.ParsePages(pages, cas.WithSourceName(in.Filename), cas.WithLogger(logger))
	if err != nil {
		logger.Warn("statement rejected", "error", err)
		return nil, err
	}
	return data, nil
}

// BatchResult is the outcome for one input of ParseBatch.
type BatchResult struct {
	Filename string
	Data     *dto.CASData
	Err      error
}

// ParseBatch parses documents concurrently. Results follow input order and
// one failing document does not stop the others.
func (s *CASService) ParseBatch(ctx context.Context, inputs []dto.CASParseInput) []BatchResult {
	results := make([]BatchResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)
	for i, in := range inputs {
		g.Go(func() error {
			data, err := s.Parse(gctx, in)
			results[i] = BatchResult{Filename: in.Filename, Data: data, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
