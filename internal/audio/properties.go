package audio

import (
	"fmt"
	"time"

	"go.senan.xyz/taglib"
)

// Properties are the audio stream facts reported in the inventory.
type Properties struct {
	// Length is the playing time of the stream.
	Length time.Duration

	// BitrateKbps is the (average) bitrate in whole kbps.
	BitrateKbps int
}

// ReadProperties reads the length and bitrate of the audio stream at path.
func ReadProperties(path string) (Properties, error) {
	props, err := taglib.ReadProperties(path)
	if err != nil {
		return Properties{}, fmt.Errorf("read audio properties: %w", err)
	}
	return Properties{
		Length:      props.Length,
		BitrateKbps: int(props.Bitrate),
	}, nil
}
