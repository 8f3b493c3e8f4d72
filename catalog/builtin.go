// Package catalog assembles the ordered list of documentation descriptors
// from the built-in set or a catalog file, followed by user-added documents.
package catalog

import "github.com/fwojciec/orgdocs"

// DefaultOrg is the placeholder GitHub organization of the built-in
// internal standards.
const DefaultOrg = "YOUR_ORG"

// Builtin returns the built-in descriptors with internal standards read from
// repositories of the given GitHub organization.
func Builtin(org string) []*orgdocs.Descriptor {
	if org == "" {
		org = DefaultOrg
	}
	return []*orgdocs.Descriptor{
		{
			Topic:       "naming-standards",
			Title:       "Resource Naming Standards",
			Description: "Required naming conventions for all GCP resources",
			Category:    orgdocs.CategoryInternal,
			Priority:    1.0,
			Source:      &orgdocs.GitHubSource{Repo: org + "/cloud-standards", Path: "gcp/naming-conventions.md", Branch: "main"},
		},
		{
			Topic:       "terraform-modules",
			Title:       "Internal Terraform Modules",
			Description: "Registry of approved internal Terraform modules and usage guidelines",
			Category:    orgdocs.CategoryInternal,
			Priority:    1.0,
			Source:      &orgdocs.GitHubSource{Repo: org + "/terraform-gcp-modules", Path: "README.md", Branch: "main"},
		},
		{
			Topic:       "security-policies",
			Title:       "GCP Security Policies",
			Description: "Security requirements, IAM policies, and compliance guidelines",
			Category:    orgdocs.CategoryInternal,
			Priority:    1.0,
			Source:      &orgdocs.GitHubSource{Repo: org + "/cloud-standards", Path: "security/gcp-policies.md", Branch: "main"},
		},
		{
			Topic:       "team-codes",
			Title:       "Team Codes",
			Description: "Valid team abbreviations for resource naming",
			Category:    orgdocs.CategoryInternal,
			Priority:    0.8,
			Source:      &orgdocs.GitHubSource{Repo: org + "/cloud-standards", Path: "teams/team-codes.md", Branch: "main"},
		},
		{
			Topic:       "gcp-storage-bucket",
			Title:       "GCP Cloud Storage Bucket",
			Description: "Google Cloud Storage bucket creation and configuration",
			Category:    orgdocs.CategoryPublic,
			Priority:    0.7,
			Source:      &orgdocs.GCPSource{Product: "storage", Page: "docs/creating-buckets"},
		},
		{
			Topic:       "gcp-iam",
			Title:       "GCP IAM Overview",
			Description: "Google Cloud Identity and Access Management",
			Category:    orgdocs.CategoryPublic,
			Priority:    0.7,
			Source:      &orgdocs.GCPSource{Product: "iam", Page: "docs/overview"},
		},
		{
			Topic:       "gcp-service-accounts",
			Title:       "GCP Service Accounts",
			Description: "Creating and managing GCP service accounts",
			Category:    orgdocs.CategoryPublic,
			Priority:    0.7,
			Source:      &orgdocs.GCPSource{Product: "iam", Page: "docs/service-accounts"},
		},
		{
			Topic:       "terraform-gcs-bucket",
			Title:       "Terraform google_storage_bucket",
			Description: "Terraform resource for GCS bucket",
			Category:    orgdocs.CategoryPublic,
			Priority:    0.6,
			Source:      &orgdocs.TerraformSource{Provider: "google", Resource: "google_storage_bucket"},
		},
		{
			Topic:       "terraform-gcp-project",
			Title:       "Terraform google_project",
			Description: "Terraform resource for GCP project",
			Category:    orgdocs.CategoryPublic,
			Priority:    0.6,
			Source:      &orgdocs.TerraformSource{Provider: "google", Resource: "google_project"},
		},
		{
			Topic:       "terraform-service-account",
			Title:       "Terraform google_service_account",
			Description: "Terraform resource for GCP service account",
			Category:    orgdocs.CategoryPublic,
			Priority:    0.6,
			Source:      &orgdocs.TerraformSource{Provider: "google", Resource: "google_service_account"},
		},
		{
			Topic:       "tekton-pipelines",
			Title:       "Tekton Pipelines Overview",
			Description: "Introduction to Tekton Pipelines for CI/CD",
			Category:    orgdocs.CategoryPublic,
			Priority:    0.6,
			Source:      &orgdocs.TektonSource{DocPath: "pipelines"},
		},
		{
			Topic:       "tekton-tasks",
			Title:       "Tekton Tasks",
			Description: "Creating and configuring Tekton Tasks",
			Category:    orgdocs.CategoryPublic,
			Priority:    0.6,
			Source:      &orgdocs.TektonSource{DocPath: "pipelines/tasks"},
		},
		{
			Topic:       "tekton-triggers",
			Title:       "Tekton Triggers",
			Description: "Event-driven pipeline execution with Tekton Triggers",
			Category:    orgdocs.CategoryPublic,
			Priority:    0.6,
			Source:      &orgdocs.TektonSource{DocPath: "triggers"},
		},
	}
}
