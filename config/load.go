/*
NAME
  load.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file at path into a string-keyed map, suitable
// for passing straight to Config.Update. Unlike revid's netsender-backed
// variable map, there is no host framework supplying config values here,
// so the file is the sole source of truth.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	vars := make(map[string]string)
	if err := yaml.Unmarshal(data, &vars); err != nil {
		return nil, err
	}
	return vars, nil
}
