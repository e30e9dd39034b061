package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "toml", "":
		return tomlTemplate, nil
	case "yaml", "yml":
		return yamlTemplate, nil
	default:
		return "", fmt.Errorf("unknown config format: %s", format)
	}
}

func WriteTemplate(path, format string, overwrite bool) error {
	template, err := Template(format)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const tomlTemplate = `[decoder]
max_depth = 256
max_input_digits = 65536
strict_padding = false

[server]
name = "bitsd"
addr = ":9400"
cors_origins = ["http://localhost:3000"]
`

const yamlTemplate = `decoder:
  max_depth: 256
  max_input_digits: 65536
  strict_padding: false
server:
  name: bitsd
  addr: ":9400"
  cors_origins:
    - http://localhost:3000
`
