// Package codec converts task sequences to and from the delimited-text table
// stored on disk.
//
// The table is RFC 4180 CSV with a header row:
//
//	id,title,description,priority,completed
//
// followed by one row per task in sequence order. Fields containing a comma,
// a double quote or a line break are quoted. Decoding is strict: the first
// malformed row aborts the whole decode with an error wrapping
// models.ErrFormat, so a damaged file is never loaded partially.
//
// Files written by versions without priorities (no "priority" column) are
// accepted; their tasks get [models.DefaultPriority].
package codec
