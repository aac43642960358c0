package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/cas-parser/dto"
	"github.com/Aashish23092/cas-parser/service"
	"github.com/Aashish23092/cas-parser/utils/export"
)

var (
	errInvalidMetadata   = errors.New("metadata must be JSON of the form {\"documents\":[{\"filename\":...,\"password\":...}]}")
	errNoPasswordForFile = errors.New("no password listed in metadata for this file")
)

// xlsxFilename is the attachment name for excel output.
const xlsxFilename = "cas_data.xlsx"

type CASHandler struct {
	casService  *service.CASService
	maxFileSize int64
	logger      *slog.Logger
}

func NewCASHandler(casService *service.CASService, maxFileSize int64, logger *slog.Logger) *CASHandler {
	return &CASHandler{
		casService:  casService,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// ParseCAS handles POST /api/v1/cas/parse
func (h *CASHandler) ParseCAS(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, fmt.Errorf("%w: %v", dto.ErrFileRequired, err))
		return
	}
	request := &dto.CASParseRequest{
		File:         file,
		Password:     c.PostForm("password"),
		OutputFormat: dto.OutputFormat(c.PostForm("output_format")),
	}
	if err := request.Validate(h.maxFileSize); err != nil {
		h.sendError(c, err)
		return
	}

	input, err := readUpload(request.File, request.Password)
	if err != nil {
		h.sendError(c, err)
		return
	}

	h.logger.Info("parsing statement", "request_id", requestID(c), "file", input.Filename, "size", len(input.Data))
	data, err := h.casService.Parse(c.Request.Context(), input)
	if err != nil {
		h.sendError(c, err)
		return
	}

	if request.OutputFormat == dto.OutputExcel {
		var buf bytes.Buffer
		if err := export.WriteXLSX(&buf, data); err != nil {
			h.sendError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", xlsxFilename))
		c.Data(http.StatusOK, export.ContentTypeXLSX, buf.Bytes())
		return
	}

	body, err := export.ToMap(data)
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// ParseCASBatch handles POST /api/v1/cas/parse/batch. Each file is matched
// to its password by filename; per-file failures are reported in the result
// list and the request itself still succeeds.
func (h *CASHandler) ParseCASBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, fmt.Errorf("%w: %v", dto.ErrFileRequired, err))
		return
	}

	request := &dto.CASBatchRequest{
		Files:    form.File["files[]"],
		Metadata: c.PostForm("metadata"),
	}
	if err := request.Validate(); err != nil {
		h.sendError(c, err)
		return
	}

	var meta dto.BatchMetadata
	if err := json.Unmarshal([]byte(request.Metadata), &meta); err != nil {
		h.sendError(c, errInvalidMetadata)
		return
	}
	if len(meta.Documents) == 0 {
		h.sendError(c, dto.ErrNoDocumentsListed)
		return
	}
	passwords := make(map[string]string, len(meta.Documents))
	for _, d := range meta.Documents {
		passwords[d.Filename] = d.Password
	}

	results := make([]dto.BatchItemResult, len(request.Files))
	inputs := make([]dto.CASParseInput, 0, len(request.Files))
	// positions maps each input back to its slot in results.
	positions := make([]int, 0, len(request.Files))
	for i, fh := range request.Files {
		results[i].Filename = fh.Filename

		password, ok := passwords[fh.Filename]
		if !ok || password == "" {
			results[i].Error = h.itemError(c, fh.Filename, errNoPasswordForFile)
			continue
		}
		single := dto.CASParseRequest{File: fh, Password: password}
		if err := single.Validate(h.maxFileSize); err != nil {
			results[i].Error = h.itemError(c, fh.Filename, err)
			continue
		}
		input, err := readUpload(fh, password)
		if err != nil {
			results[i].Error = h.itemError(c, fh.Filename, err)
			continue
		}
		inputs = append(inputs, input)
		positions = append(positions, i)
	}

	h.logger.Info("parsing statement batch", "request_id", requestID(c), "files", len(request.Files), "accepted", len(inputs))
	for j, r := range h.casService.ParseBatch(c.Request.Context(), inputs) {
		i := positions[j]
		if r.Err != nil {
			results[i].Error = h.itemError(c, r.Filename, r.Err)
			continue
		}
		results[i].Data = r.Data
	}

	c.JSON(http.StatusOK, dto.BatchResponse{
		Results:     results,
		ProcessedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func readUpload(fh *multipart.FileHeader, password string) (dto.CASParseInput, error) {
	f, err := fh.Open()
	if err != nil {
		return dto.CASParseInput{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return dto.CASParseInput{}, fmt.Errorf("failed to read upload: %w", err)
	}
	return dto.CASParseInput{Filename: fh.Filename, Password: password, Data: data}, nil
}

func (h *CASHandler) itemError(c *gin.Context, filename string, err error) *dto.ErrorResponse {
	status, resp := errorFor(err)
	resp.RequestID = requestID(c)
	h.logAt(status, "batch item failed", "request_id", resp.RequestID, "file", filename, "code", resp.Error, "error", err)
	return &resp
}

// sendError sends a structured error response
func (h *CASHandler) sendError(c *gin.Context, err error) {
	status, resp := errorFor(err)
	resp.RequestID = requestID(c)
	h.logAt(status, "request failed", "request_id", resp.RequestID, "code", resp.Error, "error", err)
	c.JSON(status, resp)
}

func (h *CASHandler) logAt(status int, msg string, args ...any) {
	if status >= http.StatusInternalServerError {
		h.logger.Error(msg, args...)
		return
	}
	h.logger.Warn(msg, args...)
}
