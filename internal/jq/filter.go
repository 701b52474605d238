// Package jq provides jq expression evaluation for output filtering.
package jq

import (
	"context"
	"fmt"
	"time"

	"github.com/itchyny/gojq"
)

// DefaultTimeout bounds filter execution. A jq program can loop forever;
// the CLI must not.
const DefaultTimeout = 1 * time.Second

// Filter is a compiled jq program.
type Filter struct {
	code    *gojq.Code
	timeout time.Duration
}

// Compile parses and compiles a jq expression. An empty expression is
// invalid; callers skip filtering instead.
func Compile(expression string) (*Filter, error) {
	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("jq compilation failed: %w", err)
	}

	return &Filter{code: code, timeout: DefaultTimeout}, nil
}

// Apply runs the filter against decoded JSON data. A single result is
// returned directly; multiple results are collected into an array.
func (f *Filter) Apply(ctx context.Context, data any) (any, error) {
	execCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	resultChan := make(chan any, 1)
	errorChan := make(chan error, 1)

	go func() {
		iter := f.code.RunWithContext(execCtx, data)

		var results []any
		for {
			v, ok := iter.Next()
			if !ok {
				break
			}
			if err, isErr := v.(error); isErr {
				errorChan <- err
				return
			}
			results = append(results, v)
		}

		switch len(results) {
		case 0:
			resultChan <- nil
		case 1:
			resultChan <- results[0]
		default:
			resultChan <- results
		}
	}()

	select {
	case result := <-resultChan:
		return result, nil
	case err := <-errorChan:
		return nil, fmt.Errorf("jq: %w", err)
	case <-execCtx.Done():
		return nil, fmt.Errorf("jq execution timeout after %v", f.timeout)
	}
}
