package service

import (
	"errors"

	"github.com/louisbranch/cands-to-harn/internal/services/mcp/domain"
	"github.com/louisbranch/cands-to-harn/internal/services/shared/converter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies the MCP server implementation.
	serverName = "cands-to-harn"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Transport kinds accepted by Run.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config configures the MCP runtime.
type Config struct {
	Transport string
	HTTPAddr  string
	// AllowedHosts extends the loopback hosts accepted by the HTTP transport.
	AllowedHosts []string
	Converter    *converter.Service
}

// NewServer builds an MCP server with every conversion tool and resource.
func NewServer(svc *converter.Service) (*mcp.Server, error) {
	if svc == nil {
		return nil, errors.New("converter is required")
	}
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(server, domain.ConvertCharacterTool(), domain.ConvertCharacterHandler(svc))
	mcp.AddTool(server, domain.RollStatsTool(), domain.RollStatsHandler(svc))
	mcp.AddTool(server, domain.ConversionOptionsTool(), domain.ConversionOptionsHandler(svc))
	server.AddResource(domain.OptionsResource(), domain.OptionsResourceHandler(svc))
	return server, nil
}
