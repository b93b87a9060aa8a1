package testcontainers

// MongoDB constants
const (
	MongoPort = "27017"

	// MongoDB image environment variables
	MongoUsernameKey     = "MONGO_INITDB_ROOT_USERNAME"
	MongoPasswordKey     = "MONGO_INITDB_ROOT_PASSWORD" //nolint:gosec
	MongoInitDatabaseKey = "MONGO_INITDB_DATABASE"
)

// PostgreSQL constants
const (
	PostgresPort = "5432"
)
