package main

import (
	"github.com/fwojciec/orgdocs/mcp"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := mcp.NewServer(deps.Catalog, deps.Documents, deps.Searcher, deps.Previewer, deps.UserDocs, deps.Sources, deps.Logger)
	if c.HTTP != "" {
		return srv.RunHTTP(deps.Ctx, c.HTTP)
	}
	return srv.Run(deps.Ctx)
}
