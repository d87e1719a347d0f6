// Package dbtx lets GORM repositories join a transaction that a service opened
// on the underlying *sql.DB.
package dbtx

import (
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a GORM handle whose statements run on tx. A nil tx returns db.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	bound := db.Session(&gorm.Session{NewDB: true, SkipDefaultTransaction: true})
	bound.Statement.ConnPool = tx
	return bound
}
