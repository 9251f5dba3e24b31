//go:build !audio

package term

import "errors"

// NewSpeaker reports that sound support was not compiled in.
func NewSpeaker() (Cues, error) {
	return Silent{}, errors.New("built without the 'audio' tag")
}
