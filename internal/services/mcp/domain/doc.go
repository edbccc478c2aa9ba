// Package domain defines the MCP tools and resources for character
// conversion. Handlers translate typed tool input into converter calls and
// back into schema-friendly output structs.
package domain
