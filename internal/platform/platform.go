// Package platform answers "what are we running on" for diagnostics.
package platform
