package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Mirror of cards created on the remote flashcard service.
CREATE TABLE IF NOT EXISTS cards (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    remote_id TEXT NOT NULL,
    collection_id TEXT NOT NULL,
    name TEXT NOT NULL,
    clean_name TEXT NOT NULL,    -- name stripped to the German alphabet, for dedup
    word_type TEXT,              -- verb, noun, adjective, or empty for unclassified
    run_id TEXT,                 -- processing run that created the card
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_cards_collection ON cards(collection_id);
CREATE INDEX IF NOT EXISTS idx_cards_clean_name ON cards(collection_id, clean_name);
CREATE INDEX IF NOT EXISTS idx_cards_run ON cards(run_id);
`
