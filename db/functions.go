package db

import (
	"database/sql"
	"fmt"
)

// InsertExtraction records a written clip and returns its row ID.
func InsertExtraction(db *sql.DB, e Extraction) (int64, error) {
	result, err := db.Exec(
		`INSERT INTO extractions (session_id, video_path, character, move, timestamp_seconds, start_seconds, end_seconds, frame_count, output_path)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.SessionID, e.VideoPath, e.Character, e.Move,
		e.TimestampSeconds, e.StartSeconds, e.EndSeconds,
		e.FrameCount, e.OutputPath,
	)
	if err != nil {
		return 0, fmt.Errorf("insert extraction: %w", err)
	}
	return result.LastInsertId()
}

// SelectExtractions lists recorded extractions, newest first, optionally
// filtered by character and/or move. A limit <= 0 means no limit.
func SelectExtractions(db *sql.DB, character, move string, limit int) ([]Extraction, error) {
	query := `SELECT id, session_id, video_path, character, move, timestamp_seconds, start_seconds, end_seconds, frame_count, output_path, created_at
		FROM extractions WHERE 1=1`
	args := []any{}
	if character != "" {
		query += ` AND character = ?`
		args = append(args, character)
	}
	if move != "" {
		query += ` AND move = ?`
		args = append(args, move)
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query extractions: %w", err)
	}
	defer rows.Close()

	var out []Extraction
	for rows.Next() {
		var e Extraction
		if err := rows.Scan(&e.ID, &e.SessionID, &e.VideoPath, &e.Character, &e.Move,
			&e.TimestampSeconds, &e.StartSeconds, &e.EndSeconds,
			&e.FrameCount, &e.OutputPath, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan extraction: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate extractions: %w", err)
	}
	return out, nil
}
