//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools used by go:generate directives and local workflows:
// - github.com/matryer/moq (consumer-side interface mocks, *_mock_test.go)
// - github.com/pressly/goose/v3/cmd/goose (inspecting the local store schema)
