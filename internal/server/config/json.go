package config

import (
	"encoding/json"
	"os"

	"github.com/GURUTIKI/presently/internal/flagx"
)

// JsonConfig is the DTO for reading a JSON configuration file. Empty fields
// leave the current Config value in place, so the file only needs the keys
// it wants to override.
type JsonConfig struct {
	EndpointAddr   string `json:"endpoint_addr"`
	DatabaseDSN    string `json:"database_dsn"`
	MongoDSN       string `json:"mongo_dsn"`
	MongoDatabase  string `json:"mongo_database"`
	FileStorePath  string `json:"file_store_path"`
	CORSOrigin     string `json:"cors_origin"`
	S3RootUser     string `json:"s3_root_user"`
	S3RootPassword string `json:"s3_root_password"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
}

// parseJson loads configuration from the JSON file given via -c/-config.
// When no file is given, nothing happens. A missing or malformed file panics,
// as a broken explicit config should not start the server.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlay := map[*string]string{
		&config.EndpointAddr:   c.EndpointAddr,
		&config.DatabaseDSN:    c.DatabaseDSN,
		&config.MongoDSN:       c.MongoDSN,
		&config.MongoDatabase:  c.MongoDatabase,
		&config.FileStorePath:  c.FileStorePath,
		&config.CORSOrigin:     c.CORSOrigin,
		&config.S3RootUser:     c.S3RootUser,
		&config.S3RootPassword: c.S3RootPassword,
		&config.S3Bucket:       c.S3Bucket,
		&config.S3Region:       c.S3Region,
		&config.S3BaseEndpoint: c.S3BaseEndpoint,
	}

	for field, value := range overlay {
		if value != "" {
			*field = value
		}
	}
}
