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
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRecorder(t *testing.T) {
	recorder, err := OpenSQLite(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	//
	defer recorder.Close()
	//
	runID := uuid.New()
	//
	for i := uint64(1); i <= 3; i++ {
		step := Step{
			RunID:       runID,
			Index:       i,
			Tactic:      "close",
			Input:       " |- 1=1",
			OutcomeKind: "proved",
			Outcome:     "proved  |- 1=1",
			Elapsed:     time.Millisecond,
		}
		//
		require.NoError(t, recorder.Record(step))
	}
	//
	var count int
	//
	row := recorder.db.QueryRow("SELECT COUNT(*) FROM steps WHERE run_id = ?", runID.String())
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 3, count)
	// Indices are unique within a run.
	err = recorder.Record(Step{RunID: runID, Index: 1, Tactic: "close"})
	assert.Error(t, err)
}

func TestSQLiteRecorderReopen(t *testing.T) {
	// Records survive closing and reopening the database.
	path := filepath.Join(t.TempDir(), "audit.db")
	//
	recorder, err := OpenSQLite(path)
	require.NoError(t, err)
	//
	require.NoError(t, recorder.Record(Step{RunID: uuid.New(), Index: 1, Tactic: "skip"}))
	require.NoError(t, recorder.Close())
	//
	recorder, err = OpenSQLite(path)
	require.NoError(t, err)
	//
	defer recorder.Close()
	//
	var count int
	//
	row := recorder.db.QueryRow("SELECT COUNT(*) FROM steps")
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 1, count)
}

func TestDiscard(t *testing.T) {
	var r Recorder = Discard{}
	//
	assert.NoError(t, r.Record(Step{}))
	assert.NoError(t, r.Close())
}
