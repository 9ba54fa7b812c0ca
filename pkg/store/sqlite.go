// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package store

import (
	"database/sql"
	"fmt"

	// Pure-Go SQLite driver.
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS steps (
	run_id  TEXT NOT NULL,
	idx     INTEGER NOT NULL,
	tactic  TEXT NOT NULL,
	input   TEXT NOT NULL,
	kind    TEXT NOT NULL,
	outcome TEXT NOT NULL,
	elapsed_ns INTEGER NOT NULL,
	PRIMARY KEY (run_id, idx)
);`

// SQLiteRecorder persists audit steps into a single insert-only SQLite
// table.
type SQLiteRecorder struct {
	db *sql.DB
}

// OpenSQLite opens (creating if necessary) an audit database at the given
// path.  Use ":memory:" for an ephemeral database.
func OpenSQLite(path string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening audit database: %w", err)
	}
	// Racing combinators record from multiple goroutines; serialise writes
	// through a single connection.
	db.SetMaxOpenConns(1)
	//
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialising audit database: %w", err)
	}
	// Done
	return &SQLiteRecorder{db}, nil
}

// Record implementation for the Recorder interface.
func (r *SQLiteRecorder) Record(step Step) error {
	_, err := r.db.Exec(
		"INSERT INTO steps (run_id, idx, tactic, input, kind, outcome, elapsed_ns) VALUES (?, ?, ?, ?, ?, ?, ?)",
		step.RunID.String(), step.Index, step.Tactic, step.Input, step.OutcomeKind, step.Outcome,
		step.Elapsed.Nanoseconds())
	//
	return err
}

// Close implementation for the Recorder interface.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
