// Package audio plays decoded PCM clips through the system audio device.
package audio
