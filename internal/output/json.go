// Package output provides output formatting for cards-admin.
//
// Purpose:
//
//	Format command output as plain lines (the default, one identifier per line),
//	JSON or YAML envelopes for scripting, a human-readable table, or CSV.
//	All formatters write to an io.Writer so commands stay testable.
//
package output

import (
	"encoding/json"
	"io"
	"time"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// Output represents structured CLI output with consistent schema.
type Output struct {
	Success   bool                   `json:"success" yaml:"success"`
	Timestamp string                 `json:"timestamp" yaml:"timestamp"`
	Command   string                 `json:"command,omitempty" yaml:"command,omitempty"`
	Data      interface{}            `json:"data,omitempty" yaml:"data,omitempty"`
	Error     *ErrorOutput           `json:"error,omitempty" yaml:"error,omitempty"`
	Summary   map[string]interface{} `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// ErrorOutput represents error information in structured output.
type ErrorOutput struct {
	Message    string `json:"message" yaml:"message"`
	Code       string `json:"code,omitempty" yaml:"code,omitempty"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Write outputs data as JSON.
func (j *JSONFormatter) Write(output Output) error {
	if output.Timestamp == "" {
		output.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	encoder := json.NewEncoder(j.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// WriteError outputs an error as JSON.
func (j *JSONFormatter) WriteError(cmd string, err error, code, suggestion string) error {
	return j.Write(Output{
		Success: false,
		Command: cmd,
		Error: &ErrorOutput{
			Message:    err.Error(),
			Code:       code,
			Suggestion: suggestion,
		},
	})
}

// WriteSuccess outputs successful operation result as JSON.
func (j *JSONFormatter) WriteSuccess(cmd string, data interface{}, summary map[string]interface{}) error {
	return j.Write(Output{
		Success: true,
		Command: cmd,
		Data:    data,
		Summary: summary,
	})
}
