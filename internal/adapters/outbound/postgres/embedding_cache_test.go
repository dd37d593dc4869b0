package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
)

func TestEmbeddingCacheRepository_GetEmbedding(t *testing.T) {
	const query = "SELECT embedding FROM embedding_cache WHERE key = $1"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedVector  []float64
		expectedFound   bool
		expectErr       bool
	}{
		"found": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("hash").
					WillReturnRows(sqlmock.NewRows([]string{"embedding"}).AddRow("[0.5,0.25,-1]"))
			},
			expectedVector: []float64{0.5, 0.25, -1},
			expectedFound:  true,
		},
		"not-found": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("hash").
					WillReturnError(sql.ErrNoRows)
			},
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs("hash").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewEmbeddingCacheRepository(db)
			vec, found, err := repo.GetEmbedding(context.Background(), "hash")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedFound, found)
			assert.Equal(t, tt.expectedVector, vec)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmbeddingCacheRepository_PutEmbedding(t *testing.T) {
	const query = "INSERT INTO embedding_cache (key,embedding) VALUES ($1,$2) ON CONFLICT (key) DO UPDATE SET embedding = EXCLUDED.embedding"
	vector := []float64{0.5, 0.25, -1}

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectErr       bool
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).
					WithArgs("hash", pgvector.NewVector([]float32{0.5, 0.25, -1})).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(query).
					WithArgs("hash", pgvector.NewVector([]float32{0.5, 0.25, -1})).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.setExpectations(mock)

			repo := NewEmbeddingCacheRepository(db)
			err = repo.PutEmbedding(context.Background(), "hash", vector)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
