package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Aashish23092/cas-parser/dto"
	"github.com/Aashish23092/cas-parser/utils/cas"
)

const (
	CodeInvalidCredential  = "INVALID_CREDENTIAL"
	CodeUnrecognizedFormat = "UNRECOGNIZED_FORMAT"
	CodeEmptyDocument      = "EMPTY_DOCUMENT"
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeRateLimited        = "RATE_LIMITED"
	CodeRequestCancelled   = "REQUEST_CANCELLED"
	CodeInternal           = "INTERNAL_ERROR"
)

const (
	msgInvalidCredential  = "Invalid PAN number. For CAMS CAS, use your PAN number as the password."
	msgUnrecognizedFormat = "The document is not a recognised CAMS or KFintech consolidated account statement."
	msgEmptyDocument      = "No text could be read from the document."
	msgRequestCancelled   = "The request was cancelled before processing finished."
	msgInternal           = "An unexpected error occurred while processing the statement."
)

var validationErrors = []error{
	dto.ErrFileRequired,
	dto.ErrPasswordRequired,
	dto.ErrOnlyPDF,
	dto.ErrInvalidOutput,
	dto.ErrFileTooLarge,
	dto.ErrMetadataRequired,
	dto.ErrNoDocumentsListed,
	errInvalidMetadata,
	errNoPasswordForFile,
}

// errorFor maps an error to the status and body returned to clients. Raw
// library messages never leave this function; validation messages do, since
// they are written for the caller.
func errorFor(err error) (int, dto.ErrorResponse) {
	status, code, message := http.StatusInternalServerError, CodeInternal, msgInternal
	switch {
	case errors.Is(err, cas.ErrCredential):
		status, code, message = http.StatusBadRequest, CodeInvalidCredential, msgInvalidCredential
	case errors.Is(err, cas.ErrUnrecognizedFormat):
		status, code, message = http.StatusUnprocessableEntity, CodeUnrecognizedFormat, msgUnrecognizedFormat
	case errors.Is(err, cas.ErrEmptyDocument):
		status, code, message = http.StatusUnprocessableEntity, CodeEmptyDocument, msgEmptyDocument
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status, code, message = http.StatusRequestTimeout, CodeRequestCancelled, msgRequestCancelled
	case isValidation(err):
		status, code, message = http.StatusBadRequest, CodeInvalidRequest, err.Error()
	}
	return status, dto.ErrorResponse{Error: code, Message: message, Code: status}
}

func isValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
