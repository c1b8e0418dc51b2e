// Package paths provides centralized path handling for mmv.
//
// It covers two concerns:
//
//   - Splitting a user supplied path into its parent directory and final
//     name segment, with the same rules for the source pattern and the
//     target template (see Split).
//   - Locating mmv's own files following the XDG Base Directory
//     layout: the user configuration file and the log file.
//
// # Environment Variables
//
//   - MMV_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/mmv)
//   - MMV_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/mmv)
//
// # Usage
//
//	dir, name, ok := paths.Split("./photos/*.jpg")
//	// dir == "./photos", name == "*.jpg", ok == true
//
//	p := paths.New()
//	cfg := p.ConfigFilePath() // $XDG_CONFIG_HOME/mmv/config.toml
package paths
