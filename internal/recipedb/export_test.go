package recipedb

// SetSchemaVersionForTest overwrites the recorded schema version.
func SetSchemaVersionForTest(d *DB, version int) error {
	_, err := d.db.Exec("UPDATE schema_version SET version = ?", version)
	return err
}

// ExecForTest runs a raw statement against the underlying database.
func ExecForTest(d *DB, query string, args ...any) error {
	_, err := d.db.Exec(query, args...)
	return err
}
