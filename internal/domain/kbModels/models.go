package kbModels

// Document is one page of extracted PDF text. Source is the file path as it
// was discovered under the data directory and Page is 0-based.
type Document struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Page   int    `json:"page"`
}

// DocChunk is a bounded slice of a Document's text carrying the parent
// metadata. ID is assigned after splitting and has the form
// "<source>:<page>:<index>"; it is the store's primary and dedup key.
type DocChunk struct {
	Content string `json:"content"`
	Source  string `json:"source"`
	Page    int    `json:"page"`
	ID      string `json:"id"`
}

// FailureKind tells callers which class of failure a result carries without
// having to string-match the message.
type FailureKind string

const (
	FailureNone FailureKind = ""
	//precondition failures: missing data directory, empty corpus
	FailurePrecondition FailureKind = "precondition"
	//backend failures: store I/O, embedding API, PDF parsing
	FailureBackend FailureKind = "backend"
)

type PopulateResult struct {
	Success            bool        `json:"success"`
	Message            string      `json:"message"`
	FailureKind        FailureKind `json:"failure_kind,omitempty"`
	DocumentsProcessed int         `json:"documents_processed"`
	ChunksCreated      int         `json:"chunks_created"`
	NewDocumentsAdded  int         `json:"new_documents_added"`
}

type ClearResult struct {
	Success       bool        `json:"success"`
	Message       string      `json:"message"`
	FailureKind   FailureKind `json:"failure_kind,omitempty"`
	ChunksDeleted int         `json:"chunks_deleted"`
}
