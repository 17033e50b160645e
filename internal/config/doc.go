// Package config provides the editor's settings.
//
// Settings are resolved in layers, each overriding the one below:
//
//	environment variables   CELLPAD_LOG_LEVEL, CELLPAD_EDITOR_WATCH, ...
//	config file             config.toml, config.yaml or config.yml
//	built-in defaults
//
// The config file is looked up in $XDG_CONFIG_HOME/cellpad (or
// ~/.config/cellpad) unless an explicit path is given. A missing file is not
// an error.
//
// # Settings
//
//	log.level                  debug, info, warn or error
//	log.file                   log file path, empty to disable
//	editor.quit_confirmations  extra quit presses needed with unsaved changes
//	editor.watch               report external changes to the open file
//	keys.quit, keys.save, keys.find   key specs such as "Ctrl+Q"
//	ui.status_fg, ui.status_bg        hex colours for the status and command lines
//	ui.empty_row               filler shown on rows past the end of the document
//
// # Basic Usage
//
//	cfg := config.New(config.WithConfigFile(path))
//	if err := cfg.Load(ctx); err != nil {
//	    return err
//	}
//	keys := cfg.Keys()
package config
