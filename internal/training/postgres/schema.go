package postgres

// AppRole is the unprivileged role transactions switch to, so the row level
// security policies apply even when the pool connects as a superuser.
const AppRole = "gymplan_app"

const schema = `
CREATE TABLE IF NOT EXISTS category (
    id         BIGSERIAL PRIMARY KEY,
    owner_id   TEXT        NOT NULL,
    name       TEXT        NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    UNIQUE (owner_id, name),
    UNIQUE (owner_id, id)
);

CREATE TABLE IF NOT EXISTS exercise (
    id            BIGSERIAL PRIMARY KEY,
    owner_id      TEXT        NOT NULL,
    name          TEXT        NOT NULL,
    default_notes TEXT        NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL,
    updated_at    TIMESTAMPTZ NOT NULL,
    UNIQUE (owner_id, name),
    UNIQUE (owner_id, id)
);

CREATE TABLE IF NOT EXISTS exercise_category (
    owner_id    TEXT   NOT NULL,
    exercise_id BIGINT NOT NULL,
    category_id BIGINT NOT NULL,
    PRIMARY KEY (exercise_id, category_id),
    FOREIGN KEY (owner_id, exercise_id) REFERENCES exercise (owner_id, id) ON DELETE CASCADE,
    FOREIGN KEY (owner_id, category_id) REFERENCES category (owner_id, id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS ix_exercise_category_category ON exercise_category (category_id);

CREATE TABLE IF NOT EXISTS rep_scheme (
    id             BIGSERIAL PRIMARY KEY,
    owner_id       TEXT        NOT NULL,
    name           TEXT        NOT NULL,
    target_reps    JSONB       NOT NULL DEFAULT '[]',
    target_weights JSONB       NOT NULL DEFAULT '[]',
    created_at     TIMESTAMPTZ NOT NULL,
    UNIQUE (owner_id, name),
    UNIQUE (owner_id, id)
);

CREATE TABLE IF NOT EXISTS macro_cycle (
    id         BIGSERIAL PRIMARY KEY,
    owner_id   TEXT        NOT NULL,
    name       TEXT        NOT NULL,
    notes      TEXT        NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL,
    UNIQUE (owner_id, id)
);

CREATE TABLE IF NOT EXISTS mini_cycle (
    id         BIGSERIAL PRIMARY KEY,
    owner_id   TEXT        NOT NULL,
    macro_id   BIGINT      NOT NULL,
    name       TEXT        NOT NULL,
    notes      TEXT        NOT NULL DEFAULT '',
    position   INTEGER     NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL,
    UNIQUE (owner_id, id),
    FOREIGN KEY (owner_id, macro_id) REFERENCES macro_cycle (owner_id, id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS ix_mini_cycle_macro ON mini_cycle (owner_id, macro_id, position);

CREATE TABLE IF NOT EXISTS workout (
    id         BIGSERIAL PRIMARY KEY,
    owner_id   TEXT        NOT NULL,
    mini_id    BIGINT      NOT NULL,
    name       TEXT        NOT NULL,
    notes      TEXT        NOT NULL DEFAULT '',
    position   INTEGER     NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL,
    UNIQUE (owner_id, id),
    FOREIGN KEY (owner_id, mini_id) REFERENCES mini_cycle (owner_id, id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS ix_workout_mini ON workout (owner_id, mini_id, position);

CREATE TABLE IF NOT EXISTS planned_exercise (
    id             BIGSERIAL PRIMARY KEY,
    owner_id       TEXT        NOT NULL,
    workout_id     BIGINT      NOT NULL,
    exercise_id    BIGINT      NOT NULL,
    scheme_id      BIGINT REFERENCES rep_scheme (id) ON DELETE SET NULL,
    sets           INTEGER     NOT NULL CHECK (sets > 0),
    target_reps    JSONB       NOT NULL DEFAULT '[]',
    target_weights JSONB       NOT NULL DEFAULT '[]',
    target_rir     JSONB       NOT NULL DEFAULT '[]',
    notes          TEXT        NOT NULL DEFAULT '',
    position       INTEGER     NOT NULL DEFAULT 0,
    created_at     TIMESTAMPTZ NOT NULL,
    updated_at     TIMESTAMPTZ NOT NULL,
    UNIQUE (owner_id, id),
    FOREIGN KEY (owner_id, workout_id) REFERENCES workout (owner_id, id) ON DELETE CASCADE,
    FOREIGN KEY (owner_id, exercise_id) REFERENCES exercise (owner_id, id) ON DELETE RESTRICT
);
CREATE INDEX IF NOT EXISTS ix_planned_exercise_workout ON planned_exercise (owner_id, workout_id, position);
CREATE INDEX IF NOT EXISTS ix_planned_exercise_exercise ON planned_exercise (owner_id, exercise_id);
CREATE INDEX IF NOT EXISTS ix_planned_exercise_scheme ON planned_exercise (scheme_id);

CREATE TABLE IF NOT EXISTS workout_log (
    id            BIGSERIAL PRIMARY KEY,
    owner_id      TEXT        NOT NULL,
    workout_id    BIGINT REFERENCES workout (id) ON DELETE SET NULL,
    completed_at  TIMESTAMPTZ NOT NULL,
    finalized_at  TIMESTAMPTZ,
    overall_notes TEXT        NOT NULL DEFAULT '',
    created_at    TIMESTAMPTZ NOT NULL,
    updated_at    TIMESTAMPTZ NOT NULL,
    UNIQUE (owner_id, id)
);
CREATE INDEX IF NOT EXISTS ix_workout_log_workout ON workout_log (workout_id);
CREATE INDEX IF NOT EXISTS ix_workout_log_completed_at ON workout_log (owner_id, completed_at);

CREATE TABLE IF NOT EXISTS set_log (
    id                  BIGSERIAL PRIMARY KEY,
    owner_id            TEXT             NOT NULL,
    workout_log_id      BIGINT           NOT NULL,
    planned_exercise_id BIGINT REFERENCES planned_exercise (id) ON DELETE SET NULL,
    exercise_id         BIGINT REFERENCES exercise (id) ON DELETE SET NULL,
    exercise_name       TEXT             NOT NULL DEFAULT '',
    set_number          INTEGER          NOT NULL CHECK (set_number > 0),
    weight              DOUBLE PRECISION NOT NULL CHECK (weight >= 0),
    reps                INTEGER          NOT NULL CHECK (reps >= 0),
    rpe                 DOUBLE PRECISION CHECK (rpe IS NULL OR (rpe > 0 AND rpe <= 10)),
    notes               TEXT             NOT NULL DEFAULT '',
    created_at          TIMESTAMPTZ      NOT NULL,
    UNIQUE (workout_log_id, set_number),
    FOREIGN KEY (owner_id, workout_log_id) REFERENCES workout_log (owner_id, id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS ix_set_log_planned_exercise ON set_log (planned_exercise_id);
CREATE INDEX IF NOT EXISTS ix_set_log_exercise ON set_log (exercise_id);

DO $$
DECLARE
    t TEXT;
BEGIN
    IF NOT EXISTS (SELECT 1 FROM pg_roles WHERE rolname = 'gymplan_app') THEN
        CREATE ROLE gymplan_app NOLOGIN;
    END IF;
    IF NOT (SELECT rolsuper FROM pg_roles WHERE rolname = current_user) THEN
        EXECUTE format('GRANT gymplan_app TO %I', current_user);
    END IF;

    FOREACH t IN ARRAY ARRAY[
        'category', 'exercise', 'exercise_category', 'rep_scheme',
        'macro_cycle', 'mini_cycle', 'workout', 'planned_exercise',
        'workout_log', 'set_log'
    ] LOOP
        EXECUTE format('ALTER TABLE %I ENABLE ROW LEVEL SECURITY', t);
        EXECUTE format('ALTER TABLE %I FORCE ROW LEVEL SECURITY', t);
        EXECUTE format('DROP POLICY IF EXISTS owner_isolation ON %I', t);
        EXECUTE format(
            'CREATE POLICY owner_isolation ON %I
                USING (owner_id = current_setting(''gymplan.owner_id'', true))
                WITH CHECK (owner_id = current_setting(''gymplan.owner_id'', true))',
            t
        );
    END LOOP;
END
$$;

GRANT USAGE ON SCHEMA public TO gymplan_app;
GRANT SELECT, INSERT, UPDATE, DELETE ON ALL TABLES IN SCHEMA public TO gymplan_app;
GRANT USAGE, SELECT ON ALL SEQUENCES IN SCHEMA public TO gymplan_app;
`
