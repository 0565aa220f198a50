package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open はSQLiteストアファイルへの接続を開く。
// storePathはストアファイルのパスを指定する（例: "glowscan.db"）。
// ストアは単一プロセス・単一ライターでのみ使用されるため、
// 同時書き込みを直列化するよう接続数を1に制限する。
func Open(storePath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", storePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	db.SetMaxOpenConns(1)

	return db, nil
}
