// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/absmach/crl"
	"github.com/absmach/crl/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// Postgres error codes:
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	errDuplicate      = "23505" // unique_violation
	errTruncation     = "22001" // string_data_right_truncation
	errInvalid        = "22P02" // invalid_text_representation
	errUntranslatable = "22P05" // untranslatable_character
	errInvalidChar    = "22021" // character_not_in_repertoire
)

var (
	ErrConflict        = errors.New("entity already exists")
	ErrMalformedEntity = errors.New("malformed entity")
	ErrCreateEntity    = errors.New("failed to create entity")
	ErrNotFound        = errors.New("entity not found")
)

type crlRepo struct {
	db *sqlx.DB
}

// NewRepository returns a Postgres persistence gateway for revocation
// lists. Each list is stored under its name as PEM text, one row per
// name, replaced on every save.
func NewRepository(db *sqlx.DB) crl.Repository {
	return crlRepo{
		db: db,
	}
}

func (repo crlRepo) Save(ctx context.Context, entity crl.Entity) error {
	content, err := crl.Encode(entity)
	if err != nil {
		return errors.Wrap(ErrMalformedEntity, err)
	}

	q := `INSERT INTO crls (name, content, number, this_update, next_update, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO UPDATE SET
		content = EXCLUDED.content, number = EXCLUDED.number,
		this_update = EXCLUDED.this_update, next_update = EXCLUDED.next_update,
		updated_at = EXCLUDED.updated_at`
	_, err = repo.db.ExecContext(ctx, q,
		entity.Name,
		string(content),
		entity.Content.Number.String(),
		entity.Content.ThisUpdate,
		entity.Content.NextUpdate,
		time.Now().UTC(),
	)
	if err != nil {
		return handleError(ErrCreateEntity, err)
	}
	return nil
}

func (repo crlRepo) Retrieve(ctx context.Context, name string) (crl.Entity, error) {
	q := `SELECT content FROM crls WHERE name = $1`
	var content string
	if err := repo.db.QueryRowxContext(ctx, q, name).Scan(&content); err != nil {
		if err == sql.ErrNoRows {
			return crl.Entity{}, errors.Wrap(ErrNotFound, err)
		}
		return crl.Entity{}, handleError(ErrNotFound, err)
	}

	entity, err := crl.Decode([]byte(content))
	if err != nil {
		return crl.Entity{}, errors.Wrap(ErrMalformedEntity, err)
	}
	entity.Name = name
	return entity, nil
}

func handleError(wrapper, err error) error {
	pqErr, ok := err.(*pgconn.PgError)
	if ok {
		switch pqErr.Code {
		case errDuplicate:
			return errors.Wrap(ErrConflict, err)
		case errInvalid, errInvalidChar, errTruncation, errUntranslatable:
			return errors.Wrap(ErrMalformedEntity, err)
		}
	}

	return errors.Wrap(wrapper, err)
}
