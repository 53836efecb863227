// Package uniuri generates random identifiers from crypto/rand.
// The web service uses it for X-Request-ID values.
package uniuri
