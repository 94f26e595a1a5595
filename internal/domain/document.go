package domain

// Document is a PDF on disk, optionally carrying a ground-truth label.
type Document struct {
	Path  string
	Label int // 0 = not publishable, 1 = publishable; meaningful only for training documents
}

// Prediction is the classifier's verdict for a single paper.
type Prediction struct {
	PaperID     string  // source file name
	Publishable int     // 0 or 1
	Confidence  float64 // ensemble vote share for the predicted class
}

// Skip records a document excluded from a pass and why.
type Skip struct {
	Path   string
	Reason string
}
