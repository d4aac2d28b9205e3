// Package store сохраняет результаты извлечения в SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"transportner/extraction"
)

// ErrDocumentNotFound документ с таким идентификатором не сохранялся
var ErrDocumentNotFound = errors.New("document not found")

// DBConfig конфигурация пула соединений
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// MentionsDB хранилище документов и найденных в них упоминаний
type MentionsDB struct {
	conn   *sql.DB
	logger *slog.Logger
}

// NewMentionsDB открывает базу с настройками пула по умолчанию
func NewMentionsDB(dbPath string) (*MentionsDB, error) {
	return NewMentionsDBWithConfig(dbPath, DBConfig{})
}

// isInMemory определяет, что путь относится к in-memory SQLite
func isInMemory(dbPath string) bool {
	if dbPath == ":memory:" {
		return true
	}
	// Формат file:memdb?mode=memory&cache=shared также хранит БД в памяти
	return strings.HasPrefix(dbPath, "file:") && strings.Contains(dbPath, "mode=memory")
}

// withForeignKeys включает внешние ключи для каждого соединения пула:
// PRAGMA foreign_keys действует только на выполнившее его соединение
func withForeignKeys(dbPath string) string {
	if strings.Contains(dbPath, "?") {
		return dbPath + "&_foreign_keys=on"
	}
	return dbPath + "?_foreign_keys=on"
}

// NewMentionsDBWithConfig открывает базу и применяет миграции
func NewMentionsDBWithConfig(dbPath string, config DBConfig) (*MentionsDB, error) {
	// in-memory база живет в одном соединении, иначе каждое новое
	// соединение получит пустую БД без таблиц
	if isInMemory(dbPath) {
		config.MaxOpenConns = 1
		config.MaxIdleConns = 1
	}

	conn, err := sql.Open("sqlite3", withForeignKeys(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open mentions database: %w", err)
	}

	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	} else {
		conn.SetMaxOpenConns(10)
	}
	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	} else {
		conn.SetMaxIdleConns(3)
	}
	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	} else {
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping mentions database: %w", err)
	}

	logger := slog.Default().With("component", "mentions_db")
	if !isInMemory(dbPath) {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			logger.Warn("Failed to enable WAL mode", "error", err.Error())
		}
	}

	db := &MentionsDB{conn: conn, logger: logger}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

func (db *MentionsDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS transport_documents (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL DEFAULT '',
			text_length INTEGER NOT NULL DEFAULT 0,
			tokens INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS transport_mentions (
			id TEXT PRIMARY KEY,
			document_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			kind TEXT NOT NULL,
			begin_offset INTEGER NOT NULL,
			end_offset INTEGER NOT NULL,
			text TEXT NOT NULL,
			items TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (document_id) REFERENCES transport_documents(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_transport_mentions_document ON transport_mentions(document_id, position);
		CREATE INDEX IF NOT EXISTS idx_transport_mentions_kind ON transport_mentions(kind);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Close закрывает соединение с базой
func (db *MentionsDB) Close() error {
	return db.conn.Close()
}

// SaveDocument сохраняет документ и его упоминания в одной транзакции.
// Повторное сохранение того же документа заменяет упоминания.
func (db *MentionsDB) SaveDocument(ctx context.Context, doc *extraction.Document, source string) error {
	if doc == nil || doc.ID == "" {
		return errors.New("document id is required")
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO transport_documents (id, source, text_length, tokens)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET source = excluded.source,
			text_length = excluded.text_length, tokens = excluded.tokens
	`, doc.ID, source, len(doc.Text), doc.Tokens)
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", doc.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM transport_mentions WHERE document_id = ?`, doc.ID); err != nil {
		return fmt.Errorf("failed to clear mentions of %s: %w", doc.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transport_mentions (id, document_id, position, kind, begin_offset, end_offset, text, items)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, m := range doc.Mentions {
		items, err := json.Marshal(m.Items)
		if err != nil {
			return fmt.Errorf("failed to marshal items of mention %s: %w", m.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, m.ID, doc.ID, i, m.Kind, m.Begin, m.End, m.Text, string(items)); err != nil {
			return fmt.Errorf("failed to save mention %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	db.logger.Debug("Document saved", "document_id", doc.ID, "mentions", len(doc.Mentions))
	return nil
}

// MentionsByDocument возвращает упоминания документа в порядке их следования в тексте
func (db *MentionsDB) MentionsByDocument(ctx context.Context, docID string) ([]extraction.Mention, error) {
	var exists int
	err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM transport_documents WHERE id = ?`, docID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check document %s: %w", docID, err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, docID)
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, kind, begin_offset, end_offset, text, items
		FROM transport_mentions
		WHERE document_id = ?
		ORDER BY position
	`, docID)
	if err != nil {
		return nil, fmt.Errorf("failed to query mentions: %w", err)
	}
	defer rows.Close()

	mentions := []extraction.Mention{}
	for rows.Next() {
		var m extraction.Mention
		var items string
		if err := rows.Scan(&m.ID, &m.Kind, &m.Begin, &m.End, &m.Text, &items); err != nil {
			return nil, fmt.Errorf("failed to scan mention: %w", err)
		}
		if err := json.Unmarshal([]byte(items), &m.Items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal items of mention %s: %w", m.ID, err)
		}
		mentions = append(mentions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate mentions: %w", err)
	}

	return mentions, nil
}

// CountByKind количество сохраненных упоминаний по видам транспорта
func (db *MentionsDB) CountByKind(ctx context.Context) (map[string]int, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT kind, COUNT(*) FROM transport_mentions GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("failed to count mentions: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[kind] = n
	}
	return counts, rows.Err()
}

// DeleteDocument удаляет документ вместе с упоминаниями
func (db *MentionsDB) DeleteDocument(ctx context.Context, docID string) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transport_mentions WHERE document_id = ?`, docID); err != nil {
		return fmt.Errorf("failed to delete mentions of %s: %w", docID, err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM transport_documents WHERE id = ?`, docID)
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", docID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrDocumentNotFound, docID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
