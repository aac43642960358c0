package cas

import "errors"

// Only these three abort a parse. Missing optional fields and malformed
// record lines are absorbed by the extractors.
var (
	ErrCredential         = errors.New("invalid password for encrypted statement")
	ErrUnrecognizedFormat = errors.New("document is not a recognised CAMS/KFintech CAS")
	ErrEmptyDocument      = errors.New("no text could be extracted from the document")
)
