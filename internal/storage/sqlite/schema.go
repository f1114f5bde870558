// ABOUTME: SQLite database schema for meal and plan storage
// ABOUTME: Creates all tables and indexes for local nutrition logging
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Logged meals
CREATE TABLE IF NOT EXISTS meals (
    id TEXT PRIMARY KEY,
    description TEXT NOT NULL,
    meal_type TEXT NOT NULL,
    meal_date TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Items belonging to a logged meal
CREATE TABLE IF NOT EXISTS meal_items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    meal_id TEXT NOT NULL REFERENCES meals(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    quantity REAL NOT NULL,
    unit TEXT NOT NULL,
    calories REAL NOT NULL DEFAULT 0,
    protein_g REAL NOT NULL DEFAULT 0,
    carb_g REAL NOT NULL DEFAULT 0,
    fat_g REAL NOT NULL DEFAULT 0,
    estimated INTEGER NOT NULL DEFAULT 0
);

-- Planned meals from generated weekly plans; items stored as JSON
CREATE TABLE IF NOT EXISTS planned_meals (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    plan_date TEXT NOT NULL,
    meal_type TEXT NOT NULL,
    name TEXT NOT NULL,
    items TEXT NOT NULL,
    notes TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Indexes for efficient querying
CREATE INDEX IF NOT EXISTS idx_meals_date ON meals(meal_date);
CREATE INDEX IF NOT EXISTS idx_meal_items_meal ON meal_items(meal_id);
CREATE INDEX IF NOT EXISTS idx_planned_date ON planned_meals(plan_date);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
