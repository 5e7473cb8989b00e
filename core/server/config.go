package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// MaxUploadMB caps the size of a single uploaded dataset file in megabytes.
	MaxUploadMB int `mapstructure:"max_upload_mb" default:"32"`
}

// BodyLimit returns the request body limit in bytes derived from MaxUploadMB.
// Two dataset files travel in one multipart request, hence the doubling.
func (c Config) BodyLimit() int {
	mb := c.MaxUploadMB
	if mb <= 0 {
		mb = 32
	}
	return mb * 2 * 1024 * 1024
}
