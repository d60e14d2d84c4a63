// Package config handles configuration for the server, including defaults,
// environment variables, an optional JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the Presently server.
//
// Exactly one storage backend is active per process: MongoDSN wins when set,
// then DatabaseDSN, otherwise the flat-file store at FileStorePath.
type Config struct {
	EndpointAddr   string
	DatabaseDSN    string
	MongoDSN       string
	MongoDatabase  string
	FileStorePath  string
	CORSOrigin     string
	S3RootUser     string
	S3RootPassword string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
}

// LoadDefaults populates Config with development defaults. Both connection
// strings default to empty, which selects the file store.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = ""
	c.MongoDSN = ""
	c.MongoDatabase = "presently"
	c.FileStorePath = "data/db.json"
	c.CORSOrigin = "http://localhost:3000"
	c.S3Bucket = "gift-images"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
