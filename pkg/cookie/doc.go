// Package cookie provides an HTTP cookie manager with shared defaults and
// per-call overrides. Defaults are loaded from the environment via Config.
package cookie
