package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshots (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE TABLE IF NOT EXISTS notifications (
	id         TEXT PRIMARY KEY,
	kind       TEXT NOT NULL CHECK(kind IN ('success', 'error', 'warning', 'info')),
	message    TEXT NOT NULL,
	read       INTEGER NOT NULL DEFAULT 0 CHECK(read IN (0, 1)),
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_notifications_read ON notifications(read);
CREATE INDEX IF NOT EXISTS idx_notifications_created ON notifications(created_at);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
	{
		version: 3,
		sql: `
CREATE TABLE IF NOT EXISTS exam_results (
	id         TEXT PRIMARY KEY,
	exam_type  TEXT NOT NULL CHECK(exam_type IN ('TYT', 'AYT')),
	branch     TEXT NOT NULL DEFAULT '',
	taken_on   TEXT NOT NULL,
	name       TEXT NOT NULL,
	notes      TEXT NOT NULL DEFAULT '',
	sections   TEXT NOT NULL DEFAULT '{}',
	total      REAL NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_exam_results_type ON exam_results(exam_type);
CREATE INDEX IF NOT EXISTS idx_exam_results_taken_on ON exam_results(taken_on);

CREATE TABLE IF NOT EXISTS study_sessions (
	id          TEXT PRIMARY KEY,
	started_at  DATETIME NOT NULL,
	ended_at    DATETIME NOT NULL,
	duration_ms INTEGER NOT NULL CHECK(duration_ms > 0),
	created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_study_sessions_started ON study_sessions(started_at);

INSERT INTO schema_version (version) VALUES (3);
`,
	},
}
