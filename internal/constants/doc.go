// Package constants holds the logo and tagline shown by gitpix --logo.
package constants
