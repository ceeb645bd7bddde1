// Package mcp provides an MCP (Model Context Protocol) server adapter
// for askdoc. It lets AI assistants search the indexed documents and
// ask questions answered from them.
package mcp

import "errors"

// ErrMissingRetrievalService is returned when the retrieval service is not provided.
var ErrMissingRetrievalService = errors.New("mcp: retrieval service is required")

// ErrMissingAskService is returned when the ask service is not provided.
var ErrMissingAskService = errors.New("mcp: ask service is required")
