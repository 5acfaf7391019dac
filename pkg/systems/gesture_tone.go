package systems

import "time"

// Tone 一段正弦提示音
type Tone struct {
	Freq     float64 // Hz
	Duration time.Duration
}

// gestureTones 每种手势的提示音，两个宿主共用
var gestureTones = map[Gesture]Tone{
	GesturePet:   {Freq: 880, Duration: 80 * time.Millisecond},
	GestureDizzy: {Freq: 330, Duration: 250 * time.Millisecond},
	GestureFeed:  {Freq: 660, Duration: 120 * time.Millisecond},
	GesturePlay:  {Freq: 990, Duration: 150 * time.Millisecond},
	GestureScare: {Freq: 220, Duration: 200 * time.Millisecond},
}

// GestureTone 返回手势的提示音，未知手势返回短促的 440Hz
func GestureTone(g Gesture) Tone {
	if t, ok := gestureTones[g]; ok {
		return t
	}
	return Tone{Freq: 440, Duration: 50 * time.Millisecond}
}

// AllGestures 所有手势
var AllGestures = []Gesture{GesturePet, GestureDizzy, GestureFeed, GesturePlay, GestureScare}
