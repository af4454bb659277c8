// Package config manages user-level settings stored at ~/.bmad-warp/config.yaml.
// It provides functions to load, read, validate and write the defaults used
// by setup runs: the install directory, a registry override and the log level.
package config
