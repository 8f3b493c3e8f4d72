// Package mcp exposes the documentation library as Model Context Protocol
// tools.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/orgdocs"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Name and Version identify the server to MCP clients.
const (
	Name    = "orgdocs"
	Version = "0.1.0"
)

// Server serves the documentation tools over MCP.
type Server struct {
	Catalog   orgdocs.Catalog
	Documents orgdocs.DocumentService
	Searcher  orgdocs.Searcher
	Previewer orgdocs.Previewer
	UserDocs  orgdocs.UserDocService
	Sources   orgdocs.DocFetcher
	Logger    *slog.Logger

	server *mcp.Server
}

// NewServer creates a Server and registers its tools.
func NewServer(
	catalog orgdocs.Catalog,
	documents orgdocs.DocumentService,
	searcher orgdocs.Searcher,
	previewer orgdocs.Previewer,
	userDocs orgdocs.UserDocService,
	sources orgdocs.DocFetcher,
	logger *slog.Logger,
) *Server {
	s := &Server{
		Catalog:   catalog,
		Documents: documents,
		Searcher:  searcher,
		Previewer: previewer,
		UserDocs:  userDocs,
		Sources:   sources,
		Logger:    logger,
		server:    mcp.NewServer(&mcp.Implementation{Name: Name, Version: Version}, nil),
	}
	s.registerTools()
	return s
}

// Run serves MCP over stdio until ctx is canceled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger().Info("serving MCP over stdio")
	return s.Serve(ctx, &mcp.StdioTransport{})
}

// Serve serves MCP over an arbitrary transport.
func (s *Server) Serve(ctx context.Context, t mcp.Transport) error {
	return s.server.Run(ctx, t)
}

// RunHTTP serves MCP over streamable HTTP on addr until ctx is canceled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	s.logger().Info("serving MCP over HTTP", "addr", addr)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}
