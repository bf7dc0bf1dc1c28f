package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Document Information
		{
			Name:        "holes_load",
			Description: "Load a geometry document and return its group/hole counts, declared units, and file size. Caches the parsed document for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the geometry document (JSON)",
					},
				},
				"required": []string{"path"},
			},
		},

		// Classification
		{
			Name:        "holes_classify",
			Description: "Classify every hole group in a geometry document. Returns one result per group (hole type, drill and counter-bore dimensions, occurrence count) under a top-level 'holes' key, in document group order.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the geometry document (JSON)",
					},
					"units": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"mm", "cm", "m", "in", "ft"},
						"description": "Output length unit (default 'mm'). Angles are always degrees.",
						"default":     "mm",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "holes_classify_inline",
			Description: "Classify the hole groups of a geometry document passed inline as JSON, without touching disk. Same result shape as holes_classify.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"document": map[string]interface{}{
						"type":        "object",
						"description": "Geometry document: {units?, groups: [{holes: [...]}]}",
					},
					"units": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"mm", "cm", "m", "in", "ft"},
						"description": "Output length unit (default 'mm')",
						"default":     "mm",
					},
				},
				"required": []string{"document"},
			},
		},
		{
			Name:        "holes_type_summary",
			Description: "Tally a geometry document's holes by recognized type. Returns group and hole counts per taxonomy label, sorted by hole count.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the geometry document (JSON)",
					},
				},
				"required": []string{"path"},
			},
		},

		// Rendering
		{
			Name:        "holes_render_profile",
			Description: "Render the cross-section silhouette of one hole group's representative hole as a base64-encoded PNG. Useful for visually checking what a classification refers to.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the geometry document (JSON)",
					},
					"group": map[string]interface{}{
						"type":        "integer",
						"description": "Zero-based hole group index (default 0)",
						"default":     0,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Output image height in pixels (default 400)",
						"default":     400,
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Fill color as hex '#RRGGBB'. Default: a stable per-hole-type color.",
					},
					"smooth": map[string]interface{}{
						"type":        "boolean",
						"description": "Apply a light blur to soften silhouette edges",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},

		// Units
		{
			Name:        "units_list",
			Description: "List the supported output length units and their size in millimeters.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
