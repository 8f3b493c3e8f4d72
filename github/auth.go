// Package github fetches markdown files from GitHub repositories, through
// the gh CLI when it is authenticated and the REST API with a token otherwise.
package github

import "github.com/fwojciec/orgdocs"

// AuthMethod is the way a GitHub fetch is authenticated.
type AuthMethod int

const (
	// AuthCLI uses the credentials of an authenticated gh CLI.
	AuthCLI AuthMethod = iota + 1
	// AuthToken uses a personal access token against the REST API.
	AuthToken
)

func (m AuthMethod) String() string {
	switch m {
	case AuthCLI:
		return "gh-cli"
	case AuthToken:
		return "token"
	}
	return "none"
}

// SelectAuth picks the authentication method. The CLI wins when it is
// authenticated; a token is used otherwise.
func SelectAuth(cliAvailable bool, token string) (AuthMethod, error) {
	if cliAvailable {
		return AuthCLI, nil
	}
	if token != "" {
		return AuthToken, nil
	}
	return 0, orgdocs.Errorf(orgdocs.EUNAUTHORIZED,
		"GitHub authentication required. Either:\n"+
			"  1. Install and authenticate gh CLI: gh auth login\n"+
			"  2. Set GITHUB_TOKEN environment variable")
}
