// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	_ "github.com/jackc/pgx/v5/stdlib"
	migrate "github.com/rubenv/sql-migrate"
)

func Migration() *migrate.MemoryMigrationSource {
	return &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id: "crl_1",
				Up: []string{
					`CREATE TABLE IF NOT EXISTS crls (
						name         VARCHAR(36) UNIQUE NOT NULL,
                        content      TEXT NOT NULL,
                        number       VARCHAR(40),
                        this_update  TIMESTAMP,
                        next_update  TIMESTAMP,
                        updated_at   TIMESTAMP,
                        PRIMARY KEY (name)
                    )`,
				},
				Down: []string{
					"DROP TABLE crls",
				},
			},
		},
	}
}
