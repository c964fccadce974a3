// Package config loads the launcher's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/arcade/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Picker start directory: ~
//   - Accepted file types: .exe .app .sh .bat
//   - Placeholder cover: /placeholder.svg
//   - Toast lifetime: 4s
//   - Log file: ~/.local/state/arcade/arcade.log
//   - Log level: info
//
// # TOML Format
//
//	start_dir = "~/Games"
//	extensions = ["exe", ".sh", ".AppImage"]
//	placeholder_image = "/covers/unknown.png"
//	toast_seconds = 6
//	log_file = "~/.cache/arcade.log"
//	log_level = "debug"
//
// Extensions are lowercased and get a leading dot if it is missing.
// Paths beginning with ~ are expanded to the user's home directory and made
// absolute.
//
// # Error Handling
//
//   - Missing file: defaults, no error
//   - Unreadable file: "open config" / "read config" error
//   - Invalid TOML: "parse config" error
package config
