// Package config provides configuration loading, merging, and validation
// for the favorites synchronizer.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Zero fields left after merging are filled from built-in defaults before
// validation. The main entry point is [GetStructuredConfig].
package config
