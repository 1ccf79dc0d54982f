// Package file builds the scan configuration from files and the environment.
//
// Sources, from lowest to highest precedence:
//   - defaults
//   - the config file (TOML or YAML, chosen by extension), by default
//     $XDG_CONFIG_HOME/cardscan/config.toml
//   - a .env file in the working directory
//   - the process environment
//   - explicit overrides (command-line flags)
//
// A TOML config file looks like:
//
//	credentials_file = "service-account.json"
//	folder_id = "1AbCdEf"
//	page_size = 200
//
//	[[people]]
//	name = "alice"
//	tags = ["alice", "al"]
//
//	[[people]]
//	name = "bob"
//	tags = ["bob"]
package file
