package main

import (
	"fmt"

	"github.com/fwojciec/orgdocs"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	p, err := deps.Previewer.Preview(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, orgdocs.FormatPreview(p))
	return nil
}

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	doc := &orgdocs.UserDoc{
		Topic:       c.Topic,
		Title:       c.Title,
		Description: c.Description,
		URL:         c.URL,
	}
	if err := deps.UserDocs.CreateUserDoc(deps.Ctx, doc); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgdocs.ErrorMessage(err))
		if orgdocs.ErrorCode(err) == orgdocs.ECONFLICT {
			fmt.Fprintln(deps.Stderr, "Hint: use 'orgdocs topics' to see taken topic names")
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added %q (%s)\n", doc.Topic, doc.URL)
	return nil
}

// Run executes the remove command.
func (c *RemoveCmd) Run(deps *Dependencies) error {
	if err := deps.UserDocs.DeleteUserDoc(deps.Ctx, c.Topic); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %q\n", c.Topic)
	return nil
}

// Run executes the user-docs command.
func (c *UserDocsCmd) Run(deps *Dependencies) error {
	docs, err := deps.UserDocs.FindUserDocs(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, orgdocs.FormatUserDocs(docs))
	return nil
}
