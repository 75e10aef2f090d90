package cards

import "encoding/json"

// QueryResult is the body returned by the query servlet. Rows are kept raw
// so each caller decodes only the fields it needs.
type QueryResult struct {
	Rows []json.RawMessage `json:"rows"`
}

// QuestionRow is the subset of an lfs:Question node read by the CLI.
type QuestionRow struct {
	Path               string   `json:"@path,omitempty"`
	SourceVocabularies []string `json:"sourceVocabularies"`
}

// VocabularyRow is the subset of an lfs:Vocabulary node read by the CLI.
type VocabularyRow struct {
	Identifier string `json:"identifier"`
}

// SessionInfo is returned by the Sling session info servlet.
type SessionInfo struct {
	UserID string `json:"userID"`
}

// AnonymousUser is the identity Sling reports when authentication failed.
const AnonymousUser = "anonymous"
