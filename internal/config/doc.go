// Package config provides configuration management for pairctl.
//
// Configuration is loaded from several YAML sources and merged in order,
// later sources overriding earlier ones:
//
//  1. Default configuration (built into the binary)
//  2. User configuration ($XDG_CONFIG_HOME/pairctl/config.yaml)
//  3. Project configuration (./.pairctl/config.yaml)
//
// A file passed with --config replaces layers 2 and 3.
//
// # Configuration Structure
//
//	keys:
//	  quit: ["q"]
//	  newPair: ["e", "a"]
//	  confirm: ["y"]
//	  decline: ["n", "esc"]
//	  copy: ["y"]
//	  help: ["?"]
//	output:
//	  pretty: true
//	  indent: "    "
//	ui:
//	  keyColumnWidth: 12
//	  showPreview: false
//	  previewStyle: "dracula"
//
// Key binding lists replace the defaults as a whole. Scalars only override
// when present in the file.
//
// # Validation
//
// Every action needs at least one key. Actions that are live in the same
// mode (quit, newPair, copy and help in Normal mode; confirm, decline and
// quit at the exit prompt) must not share a key.
package config
