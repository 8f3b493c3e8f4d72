package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/orgdocs"
)

// Run executes the topics command.
func (c *TopicsCmd) Run(deps *Dependencies) error {
	descs, err := deps.Catalog.Descriptors(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, orgdocs.FormatTopics(descs))
	return nil
}

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.GetDocument(deps.Ctx, c.Topic)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgdocs.ErrorMessage(err))
		if orgdocs.ErrorCode(err) == orgdocs.EUNAUTHORIZED {
			fmt.Fprintln(deps.Stderr, "Hint: run 'gh auth login' or pass --github-token")
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, orgdocs.FormatDocument(doc))
	return nil
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")
	limit := min(c.Limit, orgdocs.MaxSearchLimit)

	results, err := deps.Searcher.Search(deps.Ctx, query, limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, orgdocs.FormatSearchResults(query, results))
	return nil
}

// Run executes the health command.
func (c *HealthCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, orgdocs.FormatHealth(deps.Sources.CheckSourceHealth(deps.Ctx)))
	return nil
}

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := orgdocs.SnapshotFilter{Limit: c.Limit}
	if c.Topic != "" {
		filter.Topic = &c.Topic
	}

	snaps, err := deps.Snapshots.FindSnapshots(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgdocs.ErrorMessage(err))
		return err
	}

	if len(snaps) == 0 {
		fmt.Fprintln(deps.Stdout, "No retrievals recorded. Use 'orgdocs get <topic>' to fetch a document.")
		return nil
	}

	for _, s := range snaps {
		fmt.Fprintf(deps.Stdout, "%s  %-24s  %-9s  %8d  %s\n",
			s.FetchedAt.Format("2006-01-02 15:04:05"), s.Topic, s.Kind, s.Size, s.ContentHash)
	}
	return nil
}
