// Package prefs is the persisted preference store of the client: a small
// key→value table in the local SQLite database that survives restarts.
// It holds the session tokens, the serialized user profile, and the
// per-day alert read map.
package prefs
