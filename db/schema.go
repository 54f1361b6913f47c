package db

// Schema is the entries table schema. Running it against a populated
// database destroys the data in it.
const Schema = `
DROP TABLE IF EXISTS entries;
CREATE TABLE entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	text TEXT NOT NULL
);
`
