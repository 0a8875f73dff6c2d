package sqlite

// Tree links are composite (owner_id, parent_id) so a child can only hang
// under a parent of the same owner. Links that must survive the deletion of
// their target are single-column SET NULL references.
const schema = `
CREATE TABLE IF NOT EXISTS category (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id   TEXT NOT NULL,
    name       TEXT NOT NULL,
    created_at TEXT NOT NULL,
    UNIQUE (owner_id, name),
    UNIQUE (owner_id, id)
);

CREATE TABLE IF NOT EXISTS exercise (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id      TEXT NOT NULL,
    name          TEXT NOT NULL,
    default_notes TEXT NOT NULL DEFAULT '',
    created_at    TEXT NOT NULL,
    updated_at    TEXT NOT NULL,
    UNIQUE (owner_id, name),
    UNIQUE (owner_id, id)
);

CREATE TABLE IF NOT EXISTS exercise_category (
    owner_id    TEXT    NOT NULL,
    exercise_id INTEGER NOT NULL,
    category_id INTEGER NOT NULL,
    PRIMARY KEY (exercise_id, category_id),
    FOREIGN KEY (owner_id, exercise_id) REFERENCES exercise (owner_id, id) ON DELETE CASCADE,
    FOREIGN KEY (owner_id, category_id) REFERENCES category (owner_id, id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS ix_exercise_category_category ON exercise_category (category_id);

CREATE TABLE IF NOT EXISTS rep_scheme (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id       TEXT NOT NULL,
    name           TEXT NOT NULL,
    target_reps    TEXT NOT NULL DEFAULT '[]',
    target_weights TEXT NOT NULL DEFAULT '[]',
    created_at     TEXT NOT NULL,
    UNIQUE (owner_id, name),
    UNIQUE (owner_id, id)
);

CREATE TABLE IF NOT EXISTS macro_cycle (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id   TEXT NOT NULL,
    name       TEXT NOT NULL,
    notes      TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    UNIQUE (owner_id, id)
);

CREATE TABLE IF NOT EXISTS mini_cycle (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id   TEXT    NOT NULL,
    macro_id   INTEGER NOT NULL,
    name       TEXT    NOT NULL,
    notes      TEXT    NOT NULL DEFAULT '',
    position   INTEGER NOT NULL DEFAULT 0,
    created_at TEXT    NOT NULL,
    updated_at TEXT    NOT NULL,
    UNIQUE (owner_id, id),
    FOREIGN KEY (owner_id, macro_id) REFERENCES macro_cycle (owner_id, id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS ix_mini_cycle_macro ON mini_cycle (owner_id, macro_id, position);

CREATE TABLE IF NOT EXISTS workout (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id   TEXT    NOT NULL,
    mini_id    INTEGER NOT NULL,
    name       TEXT    NOT NULL,
    notes      TEXT    NOT NULL DEFAULT '',
    position   INTEGER NOT NULL DEFAULT 0,
    created_at TEXT    NOT NULL,
    updated_at TEXT    NOT NULL,
    UNIQUE (owner_id, id),
    FOREIGN KEY (owner_id, mini_id) REFERENCES mini_cycle (owner_id, id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS ix_workout_mini ON workout (owner_id, mini_id, position);

CREATE TABLE IF NOT EXISTS planned_exercise (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id       TEXT    NOT NULL,
    workout_id     INTEGER NOT NULL,
    exercise_id    INTEGER NOT NULL,
    scheme_id      INTEGER REFERENCES rep_scheme (id) ON DELETE SET NULL,
    sets           INTEGER NOT NULL CHECK (sets > 0),
    target_reps    TEXT    NOT NULL DEFAULT '[]',
    target_weights TEXT    NOT NULL DEFAULT '[]',
    target_rir     TEXT    NOT NULL DEFAULT '[]',
    notes          TEXT    NOT NULL DEFAULT '',
    position       INTEGER NOT NULL DEFAULT 0,
    created_at     TEXT    NOT NULL,
    updated_at     TEXT    NOT NULL,
    UNIQUE (owner_id, id),
    FOREIGN KEY (owner_id, workout_id) REFERENCES workout (owner_id, id) ON DELETE CASCADE,
    FOREIGN KEY (owner_id, exercise_id) REFERENCES exercise (owner_id, id)
);
CREATE INDEX IF NOT EXISTS ix_planned_exercise_workout ON planned_exercise (owner_id, workout_id, position);
CREATE INDEX IF NOT EXISTS ix_planned_exercise_exercise ON planned_exercise (owner_id, exercise_id);
CREATE INDEX IF NOT EXISTS ix_planned_exercise_scheme ON planned_exercise (scheme_id);

CREATE TABLE IF NOT EXISTS workout_log (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id      TEXT NOT NULL,
    workout_id    INTEGER REFERENCES workout (id) ON DELETE SET NULL,
    completed_at  TEXT NOT NULL,
    finalized_at  TEXT,
    overall_notes TEXT NOT NULL DEFAULT '',
    created_at    TEXT NOT NULL,
    updated_at    TEXT NOT NULL,
    UNIQUE (owner_id, id)
);
CREATE INDEX IF NOT EXISTS ix_workout_log_workout ON workout_log (workout_id);
CREATE INDEX IF NOT EXISTS ix_workout_log_completed_at ON workout_log (owner_id, completed_at);

CREATE TABLE IF NOT EXISTS set_log (
    id                  INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id            TEXT    NOT NULL,
    workout_log_id      INTEGER NOT NULL,
    planned_exercise_id INTEGER REFERENCES planned_exercise (id) ON DELETE SET NULL,
    exercise_id         INTEGER REFERENCES exercise (id) ON DELETE SET NULL,
    exercise_name       TEXT    NOT NULL DEFAULT '',
    set_number          INTEGER NOT NULL CHECK (set_number > 0),
    weight              REAL    NOT NULL CHECK (weight >= 0),
    reps                INTEGER NOT NULL CHECK (reps >= 0),
    rpe                 REAL CHECK (rpe IS NULL OR (rpe > 0 AND rpe <= 10)),
    notes               TEXT    NOT NULL DEFAULT '',
    created_at          TEXT    NOT NULL,
    UNIQUE (workout_log_id, set_number),
    FOREIGN KEY (owner_id, workout_log_id) REFERENCES workout_log (owner_id, id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS ix_set_log_planned_exercise ON set_log (planned_exercise_id);
CREATE INDEX IF NOT EXISTS ix_set_log_exercise ON set_log (exercise_id);
`
