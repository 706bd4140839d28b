package config

// StaticConfig points the router at the directory holding the browser
// client's files. An empty Dir disables static serving.
type StaticConfig struct {
	Dir string `koanf:"dir"`
}

func (c *StaticConfig) Validate() error {
	return nil
}
