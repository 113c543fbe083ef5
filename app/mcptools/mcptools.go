// Package mcptools exposes the catalog over MCP stdio, so external agents
// can reuse the same retrieval pipeline as the chat surface.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"

	"mecabot/app/service/catalog"
	"mecabot/app/service/intent"
	"mecabot/app/service/ranking"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func Run(catalogSvc *catalog.Service) error {
	s := server.NewMCPServer(
		"mecabot",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	searchTool := mcp.NewTool("search_products",
		mcp.WithDescription("Semantic search over the industrial-automation product catalog. Returns matching products as JSON."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Technical search phrase, e.g. 'plc delta 24v'"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of products to return (default 3)"),
		),
	)

	s.AddTool(searchTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		limit := request.GetInt("limit", ranking.MaxResults)

		products := catalogSvc.SearchSimilar(ctx, query, limit)

		data, err := json.Marshal(products)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal products: %w", err)
		}

		return mcp.NewToolResultText(string(data)), nil
	})

	priceTool := mcp.NewTool("parse_price_intent",
		mcp.WithDescription("Extract the price directive (none, cheapest, most_expensive, target) from free text."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("User message to analyze"),
		),
	)

	s.AddTool(priceTool, func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(intent.ParsePrice(text).String()), nil
	})

	return server.ServeStdio(s)
}
