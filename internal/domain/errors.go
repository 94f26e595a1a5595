package domain

import "errors"

var (
	// ErrUnreadableDocument signals a PDF that could not be opened or parsed.
	// It is the single recoverable failure: callers skip the document.
	ErrUnreadableDocument = errors.New("unreadable document")
	// ErrVectorDimMismatch signals a feature vector whose length differs from the rest of the dataset.
	ErrVectorDimMismatch = errors.New("feature vector dimension mismatch")
	// ErrEmptyDataset signals that no document survived feature extraction.
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrManifestInvalid signals a malformed training manifest.
	ErrManifestInvalid = errors.New("invalid manifest")
	// ErrNotFitted signals a prediction attempted on an untrained classifier.
	ErrNotFitted = errors.New("classifier not fitted")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)
