package cards

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Node types queried by the CLI.
const (
	NodeTypeQuestion   = "lfs:Question"
	NodeTypeVocabulary = "lfs:Vocabulary"
)

// DefaultLimit is large enough that the query servlet returns every row in one page.
const DefaultLimit = 1000000000

// queryPath is the JCR-SQL2 query servlet, relative to the CARDS base address.
const queryPath = "/query"

// Query is a JCR-SQL2 selection over a single node type, optionally filtered
// by one property value.
type Query struct {
	NodeType string
	Property string
	Value    string
	Limit    int
}

// QuestionsByDataType selects every question whose dataType equals dataType.
func QuestionsByDataType(dataType string) Query {
	return Query{
		NodeType: NodeTypeQuestion,
		Property: "dataType",
		Value:    dataType,
		Limit:    DefaultLimit,
	}
}

// VocabularyQuestions selects every question answered from a vocabulary.
func VocabularyQuestions() Query {
	return QuestionsByDataType("vocabulary")
}

// InstalledVocabularies selects every vocabulary installed in the repository.
func InstalledVocabularies() Query {
	return Query{NodeType: NodeTypeVocabulary, Limit: DefaultLimit}
}

// Statement renders the JCR-SQL2 statement.
func (q Query) Statement() string {
	stmt := fmt.Sprintf("select * from [%s] as q", q.NodeType)
	if q.Property != "" {
		stmt += fmt.Sprintf(" WHERE q.'%s'='%s'", q.Property, escapeLiteral(q.Value))
	}
	return stmt
}

// Validate reports whether the query can be sent.
func (q Query) Validate() error {
	if q.NodeType == "" {
		return fmt.Errorf("query node type is required")
	}
	if strings.ContainsAny(q.NodeType, "[]") {
		return fmt.Errorf("invalid node type %q", q.NodeType)
	}
	if strings.ContainsAny(q.Property, "'") {
		return fmt.Errorf("invalid property name %q", q.Property)
	}
	if q.Limit < 0 {
		return fmt.Errorf("query limit must not be negative, got %d", q.Limit)
	}
	return nil
}

// BuildQueryURL returns the query servlet URL for q under base. base must not
// end in a slash; parameters are emitted in the order query, limit.
func BuildQueryURL(base string, q Query) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}
	if _, err := url.Parse(base); err != nil {
		return "", fmt.Errorf("invalid CARDS address %q: %w", base, err)
	}

	limit := q.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	return base + queryPath +
		"?query=" + url.QueryEscape(q.Statement()) +
		"&limit=" + strconv.Itoa(limit), nil
}

// escapeLiteral doubles single quotes inside a JCR-SQL2 string literal.
func escapeLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
