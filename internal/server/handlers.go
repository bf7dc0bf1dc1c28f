package server

import (
	"encoding/json"
	"fmt"

	"github.com/tobyjack19/hole-tools-mcp/internal/classify"
	"github.com/tobyjack19/hole-tools-mcp/internal/geometry"
	"github.com/tobyjack19/hole-tools-mcp/internal/render"
	"github.com/tobyjack19/hole-tools-mcp/internal/units"
)

// defaultUnits is the output length unit when a tool call does not name one.
const defaultUnits = "mm"

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "holes_classify").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Warnw("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads geometry documents from cache as needed
//  4. Calls the appropriate classify/render/units function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "holes_load":
		return s.handleHolesLoad(args)
	case "holes_classify":
		return s.handleHolesClassify(args)
	case "holes_classify_inline":
		return s.handleHolesClassifyInline(args)
	case "holes_type_summary":
		return s.handleHolesTypeSummary(args)
	case "holes_render_profile":
		return s.handleHolesRenderProfile(args)
	case "units_list":
		return s.handleUnitsList(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Document Information Handlers ===

type holesLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleHolesLoad(args json.RawMessage) (interface{}, error) {
	var a holesLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return geometry.LoadDocumentInfo(s.cache, a.Path)
}

// === Classification Handlers ===

type holesClassifyArgs struct {
	Path  string `json:"path"`
	Units string `json:"units"`
}

func (s *Server) handleHolesClassify(args json.RawMessage) (interface{}, error) {
	var a holesClassifyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Units == "" {
		a.Units = defaultUnits
	}
	doc, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return classify.ClassifyDocument(doc, a.Units)
}

type holesClassifyInlineArgs struct {
	Document json.RawMessage `json:"document"`
	Units    string          `json:"units"`
}

func (s *Server) handleHolesClassifyInline(args json.RawMessage) (interface{}, error) {
	var a holesClassifyInlineArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.Document) == 0 {
		return nil, fmt.Errorf("missing document")
	}
	if a.Units == "" {
		a.Units = defaultUnits
	}
	doc, err := geometry.ParseDocument(a.Document)
	if err != nil {
		return nil, err
	}
	return classify.ClassifyDocument(doc, a.Units)
}

type holesTypeSummaryArgs struct {
	Path string `json:"path"`
}

// typeSummaryResult wraps the per-type rows with document totals.
type typeSummaryResult struct {
	Types      []classify.TypeCount `json:"types"`
	GroupCount int                  `json:"group_count"`
	HoleCount  int                  `json:"hole_count"`
}

func (s *Server) handleHolesTypeSummary(args json.RawMessage) (interface{}, error) {
	var a holesTypeSummaryArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	doc, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	rows, err := classify.Summarize(doc)
	if err != nil {
		return nil, err
	}
	return &typeSummaryResult{
		Types:      rows,
		GroupCount: len(doc.Groups),
		HoleCount:  doc.HoleCount(),
	}, nil
}

// === Rendering Handlers ===

type holesRenderProfileArgs struct {
	Path   string `json:"path"`
	Group  int    `json:"group"`
	Height int    `json:"height"`
	Color  string `json:"color"`
	Smooth bool   `json:"smooth"`
}

func (s *Server) handleHolesRenderProfile(args json.RawMessage) (interface{}, error) {
	var a holesRenderProfileArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	doc, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if a.Group < 0 || a.Group >= len(doc.Groups) {
		return nil, fmt.Errorf("group index %d out of range (document has %d groups)", a.Group, len(doc.Groups))
	}
	rep, err := doc.Groups[a.Group].Representative()
	if err != nil {
		return nil, fmt.Errorf("group %d: %w", a.Group, err)
	}

	label := classify.Classify(rep).HoleType
	return render.Profile(rep, label, render.Options{
		Height: a.Height,
		Color:  a.Color,
		Smooth: a.Smooth,
	})
}

// === Units Handlers ===

// unitsListResult wraps the supported units for serialization.
type unitsListResult struct {
	Units []units.Info `json:"units"`
}

func (s *Server) handleUnitsList(json.RawMessage) (interface{}, error) {
	return &unitsListResult{Units: units.Supported()}, nil
}
