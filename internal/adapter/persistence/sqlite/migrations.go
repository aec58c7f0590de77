package sqlite

import (
	"context"
	"database/sql"
)

// schema is applied on startup. Tables referenced by foreign keys come first.
const schema = `
CREATE TABLE IF NOT EXISTS clients (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL DEFAULT '',
    phone TEXT NOT NULL DEFAULT '',
    company TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS services (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS service_plans (
    id TEXT PRIMARY KEY,
    service_id TEXT NOT NULL,
    plan_name TEXT NOT NULL,
    monthly_fee REAL NOT NULL DEFAULT 0,
    setup_fee REAL NOT NULL DEFAULT 0,
    deliverables TEXT NOT NULL DEFAULT '',
    delivery_time_days INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    FOREIGN KEY (service_id) REFERENCES services(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS proposals (
    id TEXT PRIMARY KEY,
    client_id TEXT,
    user_id TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL CHECK (status IN ('Rascunho', 'Salva', 'Enviada', 'Aceita', 'Recusada')),
    total_monthly REAL NOT NULL DEFAULT 0,
    total_setup REAL NOT NULL DEFAULT 0,
    discount_value REAL NOT NULL DEFAULT 0,
    observations TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    version INTEGER NOT NULL DEFAULT 1,
    FOREIGN KEY (client_id) REFERENCES clients(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS proposal_items (
    id TEXT PRIMARY KEY,
    proposal_id TEXT NOT NULL,
    service_plan_id TEXT NOT NULL,
    created_at TEXT NOT NULL,
    UNIQUE (proposal_id, service_plan_id),
    FOREIGN KEY (proposal_id) REFERENCES proposals(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS user_roles (
    user_id TEXT PRIMARY KEY,
    role TEXT NOT NULL CHECK (role IN ('admin', 'user'))
);

CREATE INDEX IF NOT EXISTS idx_service_plans_service_id ON service_plans(service_id);
CREATE INDEX IF NOT EXISTS idx_proposal_items_proposal_id ON proposal_items(proposal_id);
CREATE INDEX IF NOT EXISTS idx_proposals_created_at ON proposals(created_at);
`

// Migrate creates the tables when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
