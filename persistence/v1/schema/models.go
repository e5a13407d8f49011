package schema

const schema = `CREATE TABLE notes (
	id VARCHAR(36) PRIMARY KEY,
	user_id VARCHAR(255) NOT NULL,
	content TEXT,
	date_created TIMESTAMP(6)
)`

const dropSchema = `DROP TABLE notes`
