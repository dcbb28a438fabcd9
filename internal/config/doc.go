// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. The builder merges them
// with mergo, which only fills fields that are still zero, so earlier sources
// win over later ones:
//  1. Environment variables
//  2. Command-line flags (or the overrides supplied by a cobra command)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetServerConfig] for the development backend,
// [GetClientConfig] for the terminal client and [LoadClientConfig] for
// commands that parse their own flags.
package config
