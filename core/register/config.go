package register

// Config limits register uploads.
type Config struct {
	// MaxUploadMB caps the size of an uploaded register file.
	MaxUploadMB int `mapstructure:"max_upload_mb" default:"20"`
}

// MaxBytes returns the upload limit in bytes.
func (c Config) MaxBytes() int {
	if c.MaxUploadMB <= 0 {
		return 20 << 20
	}
	return c.MaxUploadMB << 20
}
