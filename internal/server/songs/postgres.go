package songs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/songkeeper/internal/common"
	"github.com/dmitrijs2005/songkeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, song *Song) (*Song, error) {
	if song.ID == "" {
		song.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO songs (id, title, author, words, category, typology, tone)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		song.ID, song.Title, song.Author, song.Words,
		song.Category, song.Typology, song.Tone).Scan(&song.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return song, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Song, error) {
	query :=
		`SELECT id, title, author, words, category, typology, tone, created_at
		 FROM songs
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*Song
	for rows.Next() {
		song := &Song{}
		if err := rows.Scan(&song.ID, &song.Title, &song.Author, &song.Words,
			&song.Category, &song.Typology, &song.Tone, &song.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Song, error) {
	query :=
		`SELECT id, title, author, words, category, typology, tone, created_at
		 FROM songs
		 WHERE id = $1
		 `

	song := &Song{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&song.ID, &song.Title, &song.Author, &song.Words,
		&song.Category, &song.Typology, &song.Tone, &song.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return song, nil
}

func (r *PostgresRepository) Update(ctx context.Context, song *Song) (*Song, error) {
	query :=
		`UPDATE songs
		 SET title = $2, author = $3, words = $4, category = $5, typology = $6, tone = $7
		 WHERE id = $1
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		song.ID, song.Title, song.Author, song.Words,
		song.Category, song.Typology, song.Tone).Scan(&song.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return song, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (*Song, error) {
	query :=
		`DELETE FROM songs
		 WHERE id = $1
		 RETURNING id, title, author, words, category, typology, tone, created_at
		 `

	song := &Song{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&song.ID, &song.Title, &song.Author, &song.Words,
		&song.Category, &song.Typology, &song.Tone, &song.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return song, nil
}
