package main

import (
	"fmt"

	"github.com/fwojciec/orgdocs"
	"github.com/fwojciec/orgdocs/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	return export(deps, fs.NewWriter(c.Dir))
}

// export writes every catalog document with w. Topics that fail to fetch
// are reported and skipped; the export fails only if none succeed.
func export(deps *Dependencies, w orgdocs.DocumentWriter) error {
	descs, err := deps.Catalog.Descriptors(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgdocs.ErrorMessage(err))
		return err
	}

	var written int
	for _, d := range descs {
		doc, err := deps.Documents.GetDocument(deps.Ctx, d.Topic)
		if err == nil {
			err = w.WriteDocument(deps.Ctx, doc)
		}
		if err != nil {
			fmt.Fprintf(deps.Stderr, "skipped %s: %s\n", d.Topic, orgdocs.ErrorMessage(err))
			continue
		}
		written++
	}

	fmt.Fprintf(deps.Stdout, "Exported %d of %d documents\n", written, len(descs))
	if written == 0 && len(descs) > 0 {
		return orgdocs.Errorf(orgdocs.EUNAVAILABLE, "no documents could be exported")
	}
	return nil
}
