// Package callsign generates random amateur-radio-style callsigns and
// resolves each one to the phonetic clips that speak it.
package callsign
