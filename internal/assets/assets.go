package assets

import (
	_ "embed"
)

//go:embed default-settings.yaml
var DefaultSettings []byte

//go:embed settings.schema.json
var SettingsSchema []byte
