// Package filter narrows FrontGo list responses with expr expressions such as
//
//	status == "PAID" and grandTotal > 1000
//	icontains(customerName, "hansen") and since(createdAt) < 24
//
// Fields of each record are exposed as top-level variables. Unknown fields
// evaluate to nil. The expr builtins (lower, hasPrefix, len, ...) are
// available alongside icontains and since.
package filter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

const defaultCacheSize = 100

var defaultCompiler = NewCompiler(WithCache(defaultCacheSize))

// Compile compiles an expression with the shared, cached compiler
func Compile(expression string) (*Filter, error) {
	return defaultCompiler.Compile(expression)
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCache enables caching of compiled filters with the specified size
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache[*Filter](size)
		}
	}
}

// Compiler compiles filter expressions. It is safe for concurrent use.
type Compiler struct {
	helpers map[string]any
	cache   *lruCache[*Filter]
}

// NewCompiler creates a new filter compiler
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{helpers: helperFunctions()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles an expression into a Filter
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.helpers),
		expr.AllowUndefinedVariables(), // record fields are only known at run time
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &Filter{
		expression: expression,
		program:    program,
		helpers:    c.helpers,
	}

	if c.cache != nil {
		c.cache.Put(expression, f)
	}

	return f, nil
}

// Filter is a compiled expression
type Filter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single record
func (f *Filter) Match(record map[string]any) (bool, error) {
	env := make(map[string]any, len(record)+len(f.helpers))
	maps.Copy(env, record)
	// helpers shadow record fields of the same name
	maps.Copy(env, f.helpers)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Err: err}
	}
	// AsBool cannot hold for fields whose type is unknown until run time
	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{Expression: f.expression, Err: fmt.Errorf("expression returned %T, not bool", result)}
	}
	return matched, nil
}

// Apply filters a JSON document. An array keeps only the object elements that
// match. An object has its first array-of-objects field (in document order)
// filtered in place, leaving every other field untouched. Anything else is
// returned unchanged.
func (f *Filter) Apply(data json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return data, nil
	}

	switch trimmed[0] {
	case '[':
		return f.filterArray(trimmed)
	case '{':
		return f.filterObject(trimmed)
	default:
		return data, nil
	}
}

func (f *Filter) filterArray(data []byte) (json.RawMessage, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("failed to decode array: %w", err)
	}

	kept := make([]json.RawMessage, 0, len(elements))
	for _, element := range elements {
		var record map[string]any
		if err := json.Unmarshal(element, &record); err != nil || record == nil {
			continue
		}
		ok, err := f.Match(record)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, element)
		}
	}

	return json.Marshal(kept)
}

type objectField struct {
	key   string
	value json.RawMessage
}

func (f *Filter) filterObject(data []byte) (json.RawMessage, error) {
	fields, err := orderedFields(data)
	if err != nil {
		return nil, err
	}

	target := -1
	for i, field := range fields {
		if isObjectArray(field.value) {
			target = i
			break
		}
	}
	if target < 0 {
		return data, nil
	}

	filtered, err := f.filterArray(fields[target].value)
	if err != nil {
		return nil, err
	}
	fields[target].value = filtered

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(field.value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// orderedFields decodes the members of a JSON object in document order
func orderedFields(data []byte) ([]objectField, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to decode object: %w", err)
	}

	var fields []objectField
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to decode object: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("failed to decode object: unexpected token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to decode field %q: %w", key, err)
		}
		fields = append(fields, objectField{key: key, value: value})
	}
	return fields, nil
}

func isObjectArray(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return false
	}
	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil || len(elements) == 0 {
		return false
	}
	for _, element := range elements {
		e := bytes.TrimSpace(element)
		if len(e) == 0 || e[0] != '{' {
			return false
		}
	}
	return true
}

func helperFunctions() map[string]any {
	return map[string]any{
		"icontains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"since": since,
	}
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006",
}

// since returns the hours elapsed since a unix timestamp or a date string
func since(v any) (float64, error) {
	var t time.Time
	switch value := v.(type) {
	case float64:
		t = time.Unix(int64(value), 0)
	case int:
		t = time.Unix(int64(value), 0)
	case int64:
		t = time.Unix(value, 0)
	case string:
		parsed, err := parseTimestamp(value)
		if err != nil {
			return 0, err
		}
		t = parsed
	default:
		return 0, fmt.Errorf("since: unsupported timestamp %v", v)
	}
	return time.Since(t).Hours(), nil
}

func parseTimestamp(s string) (time.Time, error) {
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0), nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("since: cannot parse timestamp %q", s)
}
