// Package config provides configuration loading for actorkit hosts: typed
// defaults, YAML/JSON files, environment overrides and optional hot-reload
// via fsnotify. The kernel itself never reads configuration; hosts load a
// Config here and hand the relevant values to the scheduler and logger.
package config
