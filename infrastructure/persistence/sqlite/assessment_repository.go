package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"benefitflow/application/ports"
	"benefitflow/domain/core/entities"
	"benefitflow/domain/core/valueobjects"
	pkgerrors "benefitflow/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS assessment (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS node (
  id TEXT PRIMARY KEY,
  assessment_id TEXT NOT NULL REFERENCES assessment(id) ON DELETE CASCADE,
  title TEXT NOT NULL,
  short_name TEXT NOT NULL DEFAULT '',
  node_type TEXT NOT NULL,
  tooltip TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_node_assessment ON node(assessment_id);
CREATE TABLE IF NOT EXISTS link (
  id TEXT PRIMARY KEY,
  assessment_id TEXT NOT NULL REFERENCES assessment(id) ON DELETE CASCADE,
  source_id TEXT NOT NULL,
  target_id TEXT NOT NULL,
  weight REAL NOT NULL,
  rationale TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_link_assessment ON link(assessment_id);
`

// AssessmentRepository is a SQLite implementation of the assessment port.
type AssessmentRepository struct {
	db *sql.DB
}

var _ ports.AssessmentRepository = (*AssessmentRepository)(nil)

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*AssessmentRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	// Referential actions (the ON DELETE CASCADE below) are off by default.
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &AssessmentRepository{db: db}, nil
}

// Close closes the underlying database.
func (r *AssessmentRepository) Close() error {
	return r.db.Close()
}

// Save persists an assessment and its graph in one transaction, replacing
// the previously stored graph.
func (r *AssessmentRepository) Save(ctx context.Context, a *entities.Assessment) error {
	if a == nil || a.ID().IsZero() {
		return pkgerrors.NewValidationError("assessment must have an ID")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return pkgerrors.NewDatabaseError("beginning transaction", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO assessment (id, title, created_at, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET title = excluded.title, updated_at = excluded.updated_at`,
		a.ID().String(), a.Title(), fmtTime(a.CreatedAt()), fmtTime(a.UpdatedAt()),
	)
	if err != nil {
		return pkgerrors.NewDatabaseError("saving assessment", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM node WHERE assessment_id = ?`, a.ID().String()); err != nil {
		return pkgerrors.NewDatabaseError("clearing nodes", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM link WHERE assessment_id = ?`, a.ID().String()); err != nil {
		return pkgerrors.NewDatabaseError("clearing links", err)
	}

	for _, n := range a.Nodes() {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO node (id, assessment_id, title, short_name, node_type, tooltip, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			n.ID().String(), a.ID().String(), n.Title(), n.ShortName(), string(n.Type()),
			n.Tooltip(), fmtTime(n.CreatedAt()), fmtTime(n.UpdatedAt()),
		)
		if err != nil {
			return pkgerrors.NewDatabaseError("saving node", err)
		}
	}

	for _, l := range a.Links() {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO link (id, assessment_id, source_id, target_id, weight, rationale, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			l.ID().String(), a.ID().String(), l.Source().String(), l.Target().String(),
			l.Weight(), l.Rationale(), fmtTime(l.CreatedAt()), fmtTime(l.UpdatedAt()),
		)
		if err != nil {
			return pkgerrors.NewDatabaseError("saving link", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return pkgerrors.NewDatabaseError("committing transaction", err)
	}
	return nil
}

// GetByID retrieves an assessment with its full graph.
func (r *AssessmentRepository) GetByID(ctx context.Context, id valueobjects.AssessmentID) (*entities.Assessment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, created_at, updated_at FROM assessment WHERE id = ?`, id.String())

	var rawID, title, createdAt, updatedAt string
	if err := row.Scan(&rawID, &title, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, pkgerrors.NewNotFoundError("assessment")
		}
		return nil, pkgerrors.NewDatabaseError("loading assessment", err)
	}

	nodes, err := r.loadNodes(ctx, rawID)
	if err != nil {
		return nil, err
	}
	links, err := r.loadLinks(ctx, rawID)
	if err != nil {
		return nil, err
	}

	return entities.ReconstructAssessment(id, title, nodes, links, parseTime(createdAt), parseTime(updatedAt)), nil
}

// List retrieves all assessments ordered by title.
func (r *AssessmentRepository) List(ctx context.Context) ([]*entities.Assessment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM assessment ORDER BY title`)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("listing assessments", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, pkgerrors.NewDatabaseError("scanning assessment", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.NewDatabaseError("listing assessments", err)
	}

	out := make([]*entities.Assessment, 0, len(ids))
	for _, raw := range ids {
		id, err := valueobjects.NewAssessmentIDFromString(raw)
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("corrupt assessment id", err)
		}
		a, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Delete removes an assessment; the node and link rows cascade.
func (r *AssessmentRepository) Delete(ctx context.Context, id valueobjects.AssessmentID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assessment WHERE id = ?`, id.String())
	if err != nil {
		return pkgerrors.NewDatabaseError("deleting assessment", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return pkgerrors.NewDatabaseError("deleting assessment", err)
	}
	if n == 0 {
		return pkgerrors.NewNotFoundError("assessment")
	}
	return nil
}

func (r *AssessmentRepository) loadNodes(ctx context.Context, assessmentID string) ([]*entities.Node, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, short_name, node_type, tooltip, created_at, updated_at
		 FROM node WHERE assessment_id = ? ORDER BY created_at, id`, assessmentID)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("loading nodes", err)
	}
	defer rows.Close()

	var nodes []*entities.Node
	for rows.Next() {
		var rawID, title, shortName, nodeType, tooltip, createdAt, updatedAt string
		if err := rows.Scan(&rawID, &title, &shortName, &nodeType, &tooltip, &createdAt, &updatedAt); err != nil {
			return nil, pkgerrors.NewDatabaseError("scanning node", err)
		}
		id, err := valueobjects.NewNodeIDFromString(rawID)
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("corrupt node id", err)
		}
		nodes = append(nodes, entities.ReconstructNode(
			id, title, shortName, entities.NodeType(nodeType), tooltip,
			parseTime(createdAt), parseTime(updatedAt),
		))
	}
	return nodes, rows.Err()
}

func (r *AssessmentRepository) loadLinks(ctx context.Context, assessmentID string) ([]*entities.Link, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source_id, target_id, weight, rationale, created_at, updated_at
		 FROM link WHERE assessment_id = ? ORDER BY created_at, id`, assessmentID)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("loading links", err)
	}
	defer rows.Close()

	var links []*entities.Link
	for rows.Next() {
		var rawID, sourceID, targetID, rationale, createdAt, updatedAt string
		var weight float64
		if err := rows.Scan(&rawID, &sourceID, &targetID, &weight, &rationale, &createdAt, &updatedAt); err != nil {
			return nil, pkgerrors.NewDatabaseError("scanning link", err)
		}
		id, err := valueobjects.NewLinkIDFromString(rawID)
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("corrupt link id", err)
		}
		source, err := valueobjects.NewNodeIDFromString(sourceID)
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("corrupt link source", err)
		}
		target, err := valueobjects.NewNodeIDFromString(targetID)
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("corrupt link target", err)
		}
		links = append(links, entities.ReconstructLink(
			id, source, target, weight, rationale,
			parseTime(createdAt), parseTime(updatedAt),
		))
	}
	return links, rows.Err()
}

func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
