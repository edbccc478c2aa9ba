package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/louisbranch/cands-to-harn/internal/conversion"
	"github.com/louisbranch/cands-to-harn/internal/options"
	"github.com/louisbranch/cands-to-harn/internal/services/shared/converter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// OptionDescriptor is one selectable sensory category.
type OptionDescriptor struct {
	ID    string `json:"id" jsonschema:"stable identifier"`
	Value string `json:"value" jsonschema:"token to pass as hearing or eyesight"`
	Name  string `json:"name" jsonschema:"display name"`
}

// MappingEntry pairs a characteristic with its source ability.
type MappingEntry struct {
	Characteristic string `json:"characteristic" jsonschema:"Harnmaster characteristic"`
	Source         string `json:"source" jsonschema:"C&S ability it is converted from"`
}

// ConversionOptionsInput is empty; the tool takes no arguments.
type ConversionOptionsInput struct{}

// ConversionOptionsResult lists the accepted tokens and the attribute
// mapping.
type ConversionOptionsResult struct {
	Eyesight     []OptionDescriptor `json:"eyesight" jsonschema:"eyesight categories"`
	Hearing      []OptionDescriptor `json:"hearing" jsonschema:"hearing categories"`
	GrowthModes  []string           `json:"growth_modes" jsonschema:"accepted growth modes"`
	Mapping      []MappingEntry     `json:"mapping" jsonschema:"characteristic to ability mapping in output order"`
	AverageBasis string             `json:"average_basis" jsonschema:"average basis used by this server"`
}

// ConversionOptionsTool defines the MCP tool schema for listing options.
func ConversionOptionsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "harn_conversion_options",
		Description: "Lists hearing and eyesight categories, growth modes and the attribute mapping",
	}
}

// ConversionOptionsHandler lists the conversion options.
func ConversionOptionsHandler(svc *converter.Service) mcp.ToolHandlerFor[ConversionOptionsInput, ConversionOptionsResult] {
	return func(context.Context, *mcp.CallToolRequest, ConversionOptionsInput) (*mcp.CallToolResult, ConversionOptionsResult, error) {
		return nil, conversionOptions(svc), nil
	}
}

func conversionOptions(svc *converter.Service) ConversionOptionsResult {
	set := svc.Options()
	table := conversion.ConversionTable()
	mapping := make([]MappingEntry, 0, len(table))
	for _, m := range table {
		mapping = append(mapping, MappingEntry{Characteristic: string(m.Characteristic), Source: string(m.Source)})
	}
	return ConversionOptionsResult{
		Eyesight:     descriptors(set.List(options.KindEyesight)),
		Hearing:      descriptors(set.List(options.KindHearing)),
		GrowthModes:  []string{string(conversion.GrowthNone), string(conversion.GrowthAdd), string(conversion.GrowthRoll)},
		Mapping:      mapping,
		AverageBasis: string(svc.Basis()),
	}
}

func descriptors(list []options.Descriptor) []OptionDescriptor {
	out := make([]OptionDescriptor, 0, len(list))
	for _, d := range list {
		out = append(out, OptionDescriptor{ID: d.ID, Value: d.Value, Name: d.Name})
	}
	return out
}

// OptionsResource defines the readable options resource.
func OptionsResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "harn_options",
		Description: "Hearing and eyesight categories, growth modes and the attribute mapping",
		MIMEType:    "application/json",
		URI:         "harn://options",
	}
}

// OptionsResourceHandler returns the options as JSON.
func OptionsResourceHandler(svc *converter.Service) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := OptionsResource().URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		data, err := json.MarshalIndent(conversionOptions(svc), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal options: %w", err)
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}
