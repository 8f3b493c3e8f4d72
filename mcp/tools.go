package mcp

import (
	"context"
	"fmt"

	"github.com/fwojciec/orgdocs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// EmptyInput is the input of tools that take no arguments.
type EmptyInput struct{}

// TopicInput is the input of get_doc and remove_doc.
type TopicInput struct {
	Topic string `json:"topic" jsonschema:"topic name from list_topics (e.g. naming-standards or gcp-storage-bucket)"`
}

// SearchInput is the input of search_docs.
type SearchInput struct {
	Query string `json:"query" jsonschema:"search query (e.g. GCS bucket labels or service account naming)"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 5, max 20)"`
}

// URLInput is the input of preview_url.
type URLInput struct {
	URL string `json:"url" jsonschema:"URL to preview"`
}

// AddDocInput is the input of add_doc.
type AddDocInput struct {
	Topic       string `json:"topic" jsonschema:"unique topic name (e.g. gcp-bucket-naming)"`
	Title       string `json:"title" jsonschema:"human-readable title"`
	Description string `json:"description" jsonschema:"brief description of what this doc covers"`
	URL         string `json:"url" jsonschema:"full URL to the documentation"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "list_topics",
		Description: "List all available documentation topics. " +
			"Call this first to discover what documentation is available. " +
			"Returns both internal standards and public reference docs.",
	}, s.handleListTopics)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "get_doc",
		Description: "Retrieve the full content of a documentation topic by name. " +
			"Use after calling list_topics to get a specific document. " +
			"Returns the complete documentation in markdown format.",
	}, s.handleGetDoc)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "search_docs",
		Description: "Search across all documentation for relevant content. " +
			"Returns matching excerpts with relevance scores. " +
			"Use when you need to find specific information without knowing the exact topic.",
	}, s.handleSearchDocs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "preview_url",
		Description: "Preview a URL to extract title and content summary. " +
			"Use this before adding a doc with add_doc to show the user what will be added.",
	}, s.handlePreviewURL)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "add_doc",
		Description: "Add a new documentation source. " +
			"The agent should preview the URL first, then call this to persist.",
	}, s.handleAddDoc)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_doc",
		Description: "Remove a user-added documentation source by topic name.",
	}, s.handleRemoveDoc)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_user_docs",
		Description: "List all documentation sources added by the user.",
	}, s.handleListUserDocs)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_health",
		Description: "Check which documentation origins are currently reachable.",
	}, s.handleCheckHealth)
}

func (s *Server) handleListTopics(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, any, error) {
	descs, err := s.Catalog.Descriptors(ctx)
	if err != nil {
		return errorResult("Error listing topics: %s", orgdocs.ErrorMessage(err)), nil, nil
	}
	return textResult(orgdocs.FormatTopics(descs)), nil, nil
}

func (s *Server) handleGetDoc(ctx context.Context, _ *mcp.CallToolRequest, in TopicInput) (*mcp.CallToolResult, any, error) {
	if in.Topic == "" {
		return errorResult("Error: topic parameter is required"), nil, nil
	}
	doc, err := s.Documents.GetDocument(ctx, in.Topic)
	if err != nil {
		return errorResult("Error: %s", orgdocs.ErrorMessage(err)), nil, nil
	}
	return textResult(orgdocs.FormatDocument(doc)), nil, nil
}

func (s *Server) handleSearchDocs(ctx context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, any, error) {
	if in.Query == "" {
		return errorResult("Error: query parameter is required"), nil, nil
	}
	limit := in.Limit
	if limit <= 0 {
		limit = orgdocs.DefaultSearchLimit
	}
	limit = min(limit, orgdocs.MaxSearchLimit)

	results, err := s.Searcher.Search(ctx, in.Query, limit)
	if err != nil {
		return errorResult("Error executing search_docs: %s", orgdocs.ErrorMessage(err)), nil, nil
	}
	return textResult(orgdocs.FormatSearchResults(in.Query, results)), nil, nil
}

func (s *Server) handlePreviewURL(ctx context.Context, _ *mcp.CallToolRequest, in URLInput) (*mcp.CallToolResult, any, error) {
	if in.URL == "" {
		return errorResult("Error: url parameter is required"), nil, nil
	}
	p, err := s.Previewer.Preview(ctx, in.URL)
	if err != nil {
		return errorResult("Error previewing URL: %s", orgdocs.ErrorMessage(err)), nil, nil
	}
	return textResult(orgdocs.FormatPreview(p)), nil, nil
}

func (s *Server) handleAddDoc(ctx context.Context, _ *mcp.CallToolRequest, in AddDocInput) (*mcp.CallToolResult, any, error) {
	doc := &orgdocs.UserDoc{
		Topic:       in.Topic,
		Title:       in.Title,
		Description: in.Description,
		URL:         in.URL,
	}
	if err := s.UserDocs.CreateUserDoc(ctx, doc); err != nil {
		if orgdocs.ErrorCode(err) == orgdocs.EINVALID {
			return errorResult("Error: %s", orgdocs.ErrorMessage(err)), nil, nil
		}
		return errorResult("Error adding document: %s", orgdocs.ErrorMessage(err)), nil, nil
	}

	return textResult(fmt.Sprintf("✅ Added documentation source!\n\n"+
		"**Topic**: %s\n**Title**: %s\n**Description**: %s\n**URL**: %s\n\n"+
		"You can now use:\n- `get_doc('%s')` to fetch this document\n- `search_docs('%s')` to find it in searches",
		doc.Topic, doc.Title, doc.Description, doc.URL, doc.Topic, doc.Topic)), nil, nil
}

func (s *Server) handleRemoveDoc(ctx context.Context, _ *mcp.CallToolRequest, in TopicInput) (*mcp.CallToolResult, any, error) {
	if in.Topic == "" {
		return errorResult("Error: topic parameter is required"), nil, nil
	}
	if err := s.UserDocs.DeleteUserDoc(ctx, in.Topic); err != nil {
		if orgdocs.ErrorCode(err) == orgdocs.ENOTFOUND {
			return errorResult("❌ %s", orgdocs.ErrorMessage(err)), nil, nil
		}
		return errorResult("Error removing document: %s", orgdocs.ErrorMessage(err)), nil, nil
	}
	return textResult("✅ Removed documentation source: " + in.Topic), nil, nil
}

func (s *Server) handleListUserDocs(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, any, error) {
	docs, err := s.UserDocs.FindUserDocs(ctx)
	if err != nil {
		return errorResult("Error listing user docs: %s", orgdocs.ErrorMessage(err)), nil, nil
	}
	return textResult(orgdocs.FormatUserDocs(docs)), nil, nil
}

func (s *Server) handleCheckHealth(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, any, error) {
	return textResult(orgdocs.FormatHealth(s.Sources.CheckSourceHealth(ctx))), nil, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	r := textResult(fmt.Sprintf(format, args...))
	r.IsError = true
	return r
}
