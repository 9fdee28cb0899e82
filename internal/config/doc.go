// Package config loads the YAML defaults of the cn-nm command:
//
//	version: "1"
//	mode: money          # plain (default) or money
//	signed: true         # accept and emit 负
//	full_width: true     # fold １２３ to 123
//	lenient_decimal: true
//	workers: 8           # concurrency of the check command
//
// Command-line flags override values from the file.
package config
