package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading a
// local .env file first when one exists. Unset variables leave the current
// value in place.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	overlay := map[string]*string{
		"ADDRESS":          &config.EndpointAddr,
		"DATABASE_URL":     &config.DatabaseDSN,
		"MONGODB_URI":      &config.MongoDSN,
		"MONGODB_DATABASE": &config.MongoDatabase,
		"FILE_STORE_PATH":  &config.FileStorePath,
		"CORS_ORIGIN":      &config.CORSOrigin,
		"S3_ROOT_USER":     &config.S3RootUser,
		"S3_ROOT_PASSWORD": &config.S3RootPassword,
		"S3_BUCKET":        &config.S3Bucket,
		"S3_REGION":        &config.S3Region,
		"S3_BASE_ENDPOINT": &config.S3BaseEndpoint,
	}

	for name, field := range overlay {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*field = v
		}
	}
}
