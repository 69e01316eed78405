package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// serviceInfo is the root discovery document returned to IDE integrations.
type serviceInfo struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}

func (s *Server) handleServiceInfo(c *gin.Context) {
	c.JSON(http.StatusOK, serviceInfo{
		Service: s.versions.Service,
		Version: s.versions.Version,
		Status:  "running",
		Endpoints: map[string]string{
			"analyze":   "/v1/analyze",
			"health":    "/v1/health",
			"languages": "/v1/languages",
			"tools":     "/mcp/tools",
		},
	})
}

// toolProperty, toolInputSchema, and toolDescriptor model the MCP tool
// manifest format consumed by MCP clients.
type toolProperty struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Enum        []string `json:"enum,omitempty"`
	Default     string   `json:"default,omitempty"`
}

type toolInputSchema struct {
	Type       string                  `json:"type"`
	Properties map[string]toolProperty `json:"properties"`
	Required   []string                `json:"required,omitempty"`
}

type toolDescriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema toolInputSchema `json:"inputSchema"`
}

func (s *Server) handleMCPTools(c *gin.Context) {
	languageEnum := append([]string{"auto"}, languageNames()...)

	c.JSON(http.StatusOK, gin.H{
		"tools": []toolDescriptor{
			{
				Name:        "analyze_security",
				Description: "Performs comprehensive security analysis on source code",
				InputSchema: toolInputSchema{
					Type: "object",
					Properties: map[string]toolProperty{
						"code": {
							Type:        "string",
							Description: "Source code to analyze",
						},
						"file_path": {
							Type:        "string",
							Description: "Optional file path for context and language detection",
						},
						"language": {
							Type:        "string",
							Description: "Programming language to assume, or auto for detection",
							Enum:        languageEnum,
							Default:     "auto",
						},
					},
					Required: []string{"code"},
				},
			},
			{
				Name:        "health_check",
				Description: "Verifies service health and dependency availability",
				InputSchema: toolInputSchema{
					Type:       "object",
					Properties: map[string]toolProperty{},
				},
			},
			{
				Name:        "list_supported_languages",
				Description: "Lists all supported programming languages and their metadata",
				InputSchema: toolInputSchema{
					Type:       "object",
					Properties: map[string]toolProperty{},
				},
			},
		},
	})
}
