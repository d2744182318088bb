// Package config provides configuration loading, merging, and validation
// facilities for the receitas client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig], which builds the merged view
// consumed by the application wiring.
package config
