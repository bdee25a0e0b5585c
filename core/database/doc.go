// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections based on the
// application's configuration. The mirrored collections of the feed feature live here.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and pings the database. SQLite is
// limited to a single connection so that ":memory:" databases behave as one database.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table. Stores use it after migration to verify that
// the columns they rely on exist.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(ctx, db, "feed_items", []string{"item_key"})
package database
