package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/orgdocs"
	"github.com/google/uuid"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var _ orgdocs.UserDocService = (*UserDocService)(nil)

// UserDocService implements orgdocs.UserDocService using SQLite.
type UserDocService struct {
	db *DB
}

// NewUserDocService creates a new UserDocService.
func NewUserDocService(db *DB) *UserDocService {
	return &UserDocService{db: db}
}

// CreateUserDoc stores a new user doc with a generated ID and timestamp.
func (s *UserDocService) CreateUserDoc(ctx context.Context, doc *orgdocs.UserDoc) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.AddedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_docs (id, topic, title, description, url, added_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Topic, doc.Title, doc.Description, doc.URL, formatTime(doc.AddedAt))
	if errors.Is(err, sqlite3.CONSTRAINT_UNIQUE) {
		return orgdocs.Errorf(orgdocs.ECONFLICT, "Topic %q already exists", doc.Topic)
	}
	return err
}

// FindUserDocs returns all user docs in the order they were added.
func (s *UserDocService) FindUserDocs(ctx context.Context) ([]*orgdocs.UserDoc, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, topic, title, description, url, added_at
		FROM user_docs
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*orgdocs.UserDoc
	for rows.Next() {
		var doc orgdocs.UserDoc
		var addedAt string

		if err := rows.Scan(&doc.ID, &doc.Topic, &doc.Title, &doc.Description, &doc.URL, &addedAt); err != nil {
			return nil, err
		}

		if doc.AddedAt, err = parseTime(addedAt, "added_at"); err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteUserDoc removes the user doc for topic.
func (s *UserDocService) DeleteUserDoc(ctx context.Context, topic string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM user_docs WHERE topic = ?", topic)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return orgdocs.Errorf(orgdocs.ENOTFOUND, "Documentation source %q not found. Use `list_user_docs` to see available user docs.", topic)
	}

	return nil
}
