package db

import (
	_ "embed"
)

// Schema and migrations

//go:embed sql/create_tables.sql
var CreateTablesSQL string

// Snapshot queries

//go:embed sql/insert_snapshot.sql
var InsertSnapshotSQL string

//go:embed sql/select_snapshots.sql
var SelectSnapshotsSQL string

//go:embed sql/select_snapshot_by_id.sql
var SelectSnapshotByIDSQL string

//go:embed sql/select_latest_snapshot.sql
var SelectLatestSnapshotSQL string

//go:embed sql/delete_snapshot.sql
var DeleteSnapshotSQL string

// Snapshot song queries

//go:embed sql/insert_snapshot_song.sql
var InsertSnapshotSongSQL string

//go:embed sql/select_snapshot_songs.sql
var SelectSnapshotSongsSQL string

//go:embed sql/delete_snapshot_songs.sql
var DeleteSnapshotSongsSQL string
