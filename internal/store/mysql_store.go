package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MySQLStore keeps every collection in one table of JSON bodies keyed by a
// generated ObjectID.
type MySQLStore struct {
	db   *sql.DB
	name string
}

func NewMySQLStore(db *sql.DB, name string) *MySQLStore {
	return &MySQLStore{db: db, name: name}
}

func (s *MySQLStore) Migrate(ctx context.Context) error {
	return applyMigrations(ctx, "mysql", func(ctx context.Context, stmt string) error {
		_, err := s.db.ExecContext(ctx, stmt)
		return err
	})
}

func (s *MySQLStore) Create(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("encoding %s document: %w", collection, err)
	}

	id := primitive.NewObjectID()
	query := `INSERT INTO documents (id, collection, body) VALUES (?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, IDString(id), collection, string(body)); err != nil {
		return primitive.NilObjectID, fmt.Errorf("inserting into %s: %w", collection, err)
	}
	return id, nil
}

func (s *MySQLStore) ReadMany(ctx context.Context, collection string, q Query) ([]Document, error) {
	query := `SELECT id, body FROM documents WHERE collection = ? ORDER BY seq`
	if q.Newest {
		query += ` DESC`
	}
	args := []interface{}{collection}
	if q.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var id string
		var body []byte
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", collection, err)
		}
		doc, err := decodeRow(id, body)
		if err != nil {
			return nil, fmt.Errorf("decoding %s row: %w", collection, err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", collection, err)
	}
	return docs, nil
}

func (s *MySQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *MySQLStore) ListCollections(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning collection name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *MySQLStore) Name() string { return s.name }

func (s *MySQLStore) Close(context.Context) error {
	return s.db.Close()
}

// decodeRow rebuilds a Document from a SQL row, restoring the native id.
func decodeRow(id string, body []byte) (Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parsing id %q: %w", id, err)
	}

	doc := Document{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	doc[IDField] = oid
	return doc, nil
}
