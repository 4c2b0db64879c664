package system

import (
	"bytes"
	"encoding/binary"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/blockfall/common"
	"github.com/milk9111/blockfall/ecs"
)

const sampleRate = 44100

// Only one audio context may exist per process, and the game rebuilds its
// systems on restart.
var audioContext *audio.Context

func ensureAudioContext() *audio.Context {
	if audioContext == nil {
		audioContext = audio.NewContext(sampleRate)
	}
	return audioContext
}

// AudioSystem plays synthesized blips for game events. All sounds are square
// waves generated at startup; there are no audio assets.
type AudioSystem struct {
	settle *audio.Player
	clear  *audio.Player
	topOut *audio.Player
}

func NewAudioSystem() *AudioSystem {
	ctx := ensureAudioContext()

	clearPCM := append(tonePCM(440, 80*time.Millisecond, 0.4), tonePCM(660, 140*time.Millisecond, 0.4)...)

	return &AudioSystem{
		settle: newTonePlayer(ctx, tonePCM(220, 90*time.Millisecond, 0.4)),
		clear:  newTonePlayer(ctx, clearPCM),
		topOut: newTonePlayer(ctx, tonePCM(110, 600*time.Millisecond, 0.5)),
	}
}

func (a *AudioSystem) Update(w *ecs.World) {
	for _, evt := range w.Events().Items() {
		switch evt.Type {
		case ecs.EventPieceSettled:
			a.play(a.settle)
		case ecs.EventRowsCleared:
			a.play(a.clear)
		case ecs.EventToppedOut:
			a.play(a.topOut)
		}
	}
}

func (a *AudioSystem) play(player *audio.Player) {
	if player == nil {
		return
	}
	if player.IsPlaying() {
		return
	}
	player.Rewind()
	player.Play()
}

func newTonePlayer(ctx *audio.Context, pcm []byte) *audio.Player {
	player, err := ctx.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		log.Printf("audio: create player: %v", err)
		return nil
	}
	return player
}

// tonePCM renders a square wave with a linear fade-out as 16-bit little
// endian stereo samples, the format the audio context consumes.
func tonePCM(freq float64, dur time.Duration, vol float64) []byte {
	n := int(float64(sampleRate) * dur.Seconds())
	buf := make([]byte, n*4)
	period := float64(sampleRate) / freq

	for i := 0; i < n; i++ {
		sample := 1.0
		if float64(i%int(period)) >= period/2 {
			sample = -1.0
		}
		env := common.Lerp(1, 0, float64(i)/float64(n))
		v := int16(sample * env * vol * 32767)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
