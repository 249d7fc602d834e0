// Package config loads typed configuration structs from environment variables.
//
// Configuration is declared as plain structs with `env:` tags and loaded with
// the generic Load or MustLoad functions. A .env file in the working directory
// is picked up automatically for local development. Every configuration type
// is parsed once per process and cached afterwards.
package config
