package cesd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// answersSchemaURL names the answer-file schema inside the compiler.
const answersSchemaURL = "schema://cesd-answers.json"

// answersSchema describes an answer file: an object keyed by question index
// ("0".."19") whose values are response values.
var answersSchema = map[string]any{
	"type": "object",
	"propertyNames": map[string]any{
		"pattern": "^(1?[0-9])$",
	},
	"additionalProperties": map[string]any{
		"type":    "integer",
		"minimum": 0,
		"maximum": MaxResponse,
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func answersValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go ints.
		raw, err := json.Marshal(answersSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(answersSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(answersSchemaURL)
	})
	return compiled, compileErr
}

// ParseAnswers reads a JSON answer file such as {"0": 2, "3": 1}.
// Missing questions are allowed here; completeness is checked by Evaluate.
func ParseAnswers(r io.Reader) (AnswerMap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}

	// UnmarshalJSON keeps numbers as json.Number so 1.5 fails "integer".
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := answersValidator()
	if err != nil {
		return nil, fmt.Errorf("compile answers schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("answers do not match schema: %w", err)
	}

	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}

	answers := make(AnswerMap, len(raw))
	for k, v := range raw {
		q, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("question key %q: %w", k, err)
		}
		if err := answers.Set(q, v); err != nil {
			return nil, err
		}
	}
	return answers, nil
}

// ParseValues reads a positional, comma-separated list of responses where
// the n-th entry answers question n. Empty entries leave a question
// unanswered.
func ParseValues(s string) (AnswerMap, error) {
	answers := make(AnswerMap)
	if strings.TrimSpace(s) == "" {
		return answers, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) > NumQuestions {
		return nil, fmt.Errorf("got %d values, want at most %d", len(parts), NumQuestions)
	}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		if err := answers.Set(i, v); err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
	}
	return answers, nil
}
