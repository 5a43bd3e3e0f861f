package palette

// Channel identifies one of the three color components a column of toggles drives
type Channel int

const (
	Hue Channel = iota
	Saturation
	Brightness
	channelCount
)

// Channels lists every channel in column order
var Channels = [channelCount]Channel{Hue, Saturation, Brightness}

func (c Channel) String() string {
	switch c {
	case Hue:
		return "hue"
	case Saturation:
		return "saturation"
	case Brightness:
		return "brightness"
	}
	return "unknown"
}

// Valid reports whether c names a real channel
func (c Channel) Valid() bool {
	return c >= Hue && c < channelCount
}
