// Package commands defines the flames-schema CLI.
//
// Commands
//
//   - collections  List the known collections
//   - schema       Print field metadata for one or all collections
//   - example      Print the example document of a collection
//   - validate     Check json, ndjson or csv documents against a collection
//
// The root command loads the configuration and builds the application
// context before any subcommand runs.
package commands
