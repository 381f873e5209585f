// Package phonetic loads the spoken-alphabet clips for every symbol a
// callsign can contain and keeps them decoded in the device format.
package phonetic
