package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/user/songdb/catalog"
)

// ErrNoSnapshots is returned when the database holds no snapshot.
var ErrNoSnapshots = errors.New("no snapshots found")

// InsertSnapshot stores songs as a new snapshot taken from source and returns
// its ID. All rows are written in one transaction.
func InsertSnapshot(db *sql.DB, source string, songs []catalog.Song) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	created := time.Now().UTC().Format(time.RFC3339)
	result, err := tx.Exec(InsertSnapshotSQL, source, len(songs), created)
	if err != nil {
		return 0, fmt.Errorf("insert snapshot: %w", err)
	}
	snapshotID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get snapshot id: %w", err)
	}

	for _, s := range songs {
		_, err := tx.Exec(InsertSnapshotSongSQL, snapshotID, s.ItemCode, s.Title, s.Description, s.Artist, s.Album, s.Price)
		if err != nil {
			return 0, fmt.Errorf("insert song %s: %w", s.ItemCode, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit snapshot: %w", err)
	}
	return snapshotID, nil
}

// ListSnapshots returns all snapshots, newest first.
func ListSnapshots(db *sql.DB) ([]Snapshot, error) {
	rows, err := db.Query(SelectSnapshotsSQL)
	if err != nil {
		return nil, fmt.Errorf("select snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}
	return snapshots, nil
}

// GetSnapshot returns the snapshot with id, or the newest one when id is 0.
func GetSnapshot(db *sql.DB, id int64) (Snapshot, error) {
	var row *sql.Row
	if id == 0 {
		row = db.QueryRow(SelectLatestSnapshotSQL)
	} else {
		row = db.QueryRow(SelectSnapshotByIDSQL, id)
	}
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		if id == 0 {
			return Snapshot{}, ErrNoSnapshots
		}
		return Snapshot{}, fmt.Errorf("snapshot %d not found", id)
	}
	return snap, err
}

// SnapshotSongs returns the songs of a snapshot in item-code order.
func SnapshotSongs(db *sql.DB, snapshotID int64) ([]catalog.Song, error) {
	rows, err := db.Query(SelectSnapshotSongsSQL, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("select snapshot songs: %w", err)
	}
	defer rows.Close()

	var songs []catalog.Song
	for rows.Next() {
		var s catalog.Song
		if err := rows.Scan(&s.Title, &s.ItemCode, &s.Description, &s.Artist, &s.Album, &s.Price); err != nil {
			return nil, fmt.Errorf("scan snapshot song: %w", err)
		}
		songs = append(songs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshot songs: %w", err)
	}
	return songs, nil
}

// DeleteSnapshot removes a snapshot and its songs.
func DeleteSnapshot(db *sql.DB, snapshotID int64) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(DeleteSnapshotSongsSQL, snapshotID); err != nil {
		return fmt.Errorf("delete snapshot songs: %w", err)
	}
	result, err := tx.Exec(DeleteSnapshotSQL, snapshotID)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check deletion result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("snapshot %d not found", snapshotID)
	}
	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (Snapshot, error) {
	var snap Snapshot
	var created string
	if err := row.Scan(&snap.ID, &snap.Source, &snap.SongCount, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Snapshot{}, err
		}
		return Snapshot{}, fmt.Errorf("scan snapshot: %w", err)
	}
	t, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parse snapshot time %q: %w", created, err)
	}
	snap.CreatedAt = t
	return snap, nil
}
