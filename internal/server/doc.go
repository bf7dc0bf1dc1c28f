// Package server implements the MCP (Model Context Protocol) server for the
// hole-recognition tools.
//
// This package provides a JSON-RPC 2.0 server that exposes hole-feature
// classification over the MCP protocol, so MCP-compatible clients can
// classify machined-hole geometry exported by a CAD/CAM host without
// embedding the recognition logic themselves.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Document Information:
//   - holes_load: Load a geometry document and get metadata
//
// Classification:
//   - holes_classify: Classify every hole group in a document
//   - holes_classify_inline: Classify an inline JSON document
//   - holes_type_summary: Tally holes by recognized type
//
// Rendering:
//   - holes_render_profile: Render a group's cross-section as PNG
//
// Units:
//   - units_list: Enumerate supported output length units
//
// # Document Caching
//
// The server maintains an in-memory cache of parsed geometry documents,
// keyed by path and reused across tool calls. The cache persists for the
// lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Note that an unrecognized hole pattern is not an error: classification
// degrades to the "Unknown" label by design, and a document with zero
// classifiable holes is a valid result.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// All diagnostic logging goes to the supplied zap logger (stderr); stdout
// is reserved for protocol frames.
package server
