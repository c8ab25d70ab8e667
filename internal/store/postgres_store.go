package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostgresStore is the JSONB twin of MySQLStore.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	return applyMigrations(ctx, "postgres", func(ctx context.Context, stmt string) error {
		_, err := s.pool.Exec(ctx, stmt)
		return err
	})
}

func (s *PostgresStore) Create(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("encoding %s document: %w", collection, err)
	}

	id := primitive.NewObjectID()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (id, collection, body) VALUES ($1, $2, $3)`,
		IDString(id), collection, string(body),
	)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("inserting into %s: %w", collection, err)
	}
	return id, nil
}

func (s *PostgresStore) ReadMany(ctx context.Context, collection string, q Query) ([]Document, error) {
	query := `SELECT id, body::text FROM documents WHERE collection = $1 ORDER BY seq`
	if q.Newest {
		query += ` DESC`
	}
	args := []interface{}{collection}
	if q.Limit > 0 {
		query += ` LIMIT $2`
		args = append(args, q.Limit)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", collection, err)
		}
		doc, err := decodeRow(id, []byte(body))
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

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) ListCollections(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
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

func (s *PostgresStore) Name() string {
	return s.pool.Config().ConnConfig.Database
}

func (s *PostgresStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}
