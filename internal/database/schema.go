package database

// Table DDL, one constant per table. Creation order matters: author before
// quote, quote before comment, so the foreign keys resolve.
const (
	createAuthorTable = `CREATE TABLE IF NOT EXISTS author (
    id_author INT AUTO_INCREMENT PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    birth_date DATE NOT NULL,
    birth_city VARCHAR(255),
    birth_state VARCHAR(255),
    birth_country VARCHAR(255),
    description TEXT
)`

	createQuoteTable = `CREATE TABLE IF NOT EXISTS quote (
    id_quote INT AUTO_INCREMENT PRIMARY KEY,
    content TEXT NOT NULL,
    author_id INT,
    tags VARCHAR(512),
    FOREIGN KEY (author_id) REFERENCES author (id_author)
)`

	createCommentTable = `CREATE TABLE IF NOT EXISTS comment (
    id_comment INT AUTO_INCREMENT PRIMARY KEY,
    quote_id INT NOT NULL,
    title VARCHAR(255) NOT NULL,
    details TEXT,
    user_email VARCHAR(255) NOT NULL,
    FOREIGN KEY (quote_id) REFERENCES quote (id_quote)
)`

	createMetadataTable = `CREATE TABLE IF NOT EXISTS metadata (
    id_key INT AUTO_INCREMENT PRIMARY KEY,
    key_name VARCHAR(255) NOT NULL,
    key_value VARCHAR(2048)
)`
)

// tableDDL lists the managed tables in creation order.
var tableDDL = []struct {
	name string
	ddl  string
}{
	{"author", createAuthorTable},
	{"quote", createQuoteTable},
	{"comment", createCommentTable},
	{"metadata", createMetadataTable},
}

// TableNames returns the managed table names in creation order.
func TableNames() []string {
	names := make([]string, 0, len(tableDDL))
	for _, t := range tableDDL {
		names = append(names, t.name)
	}
	return names
}
