// Package audio 程序化合成游戏音效与背景音乐
//
// 所有声音都由若干音符（Note）混合而成，输出为 48kHz、16-bit 小端、双声道 PCM，
// 可直接交给 ebiten audio.Context 播放，不依赖任何音频资源文件
package audio

import (
	"math"
	"math/rand"
)

// SampleRate 输出采样率（Hz），需与 audio.NewContext 的参数一致
const SampleRate = 48000

// bytesPerFrame 每帧字节数：2 声道 × 16-bit
const bytesPerFrame = 4

// Waveform 波形类型
type Waveform int

const (
	// WaveSine 正弦波：柔和的提示音
	WaveSine Waveform = iota
	// WaveSquare 方波：街机风格的射击音
	WaveSquare
	// WaveTriangle 三角波：背景音乐旋律
	WaveTriangle
	// WaveNoise 白噪声：霰弹枪与爆炸
	WaveNoise
)

// Note 一个音符
// 频率在持续时间内从 StartFreq 线性滑到 EndFreq，音量按线性衰减包络收尾
type Note struct {
	Wave      Waveform
	Start     float64 // 起始时间（秒）
	Duration  float64 // 持续时间（秒）
	StartFreq float64 // 起始频率（Hz）
	EndFreq   float64 // 结束频率（Hz），为 0 时等于 StartFreq
	Volume    float64 // 峰值音量 0.0 ~ 1.0
	Attack    float64 // 起音时间（秒），避免爆音
}

// Tone 创建固定频率的音符
func Tone(wave Waveform, start, duration, freq, volume float64) Note {
	return Note{Wave: wave, Start: start, Duration: duration, StartFreq: freq, Volume: volume, Attack: 0.005}
}

// Sweep 创建频率滑动的音符
func Sweep(wave Waveform, start, duration, from, to, volume float64) Note {
	return Note{Wave: wave, Start: start, Duration: duration, StartFreq: from, EndFreq: to, Volume: volume, Attack: 0.005}
}

// Noise 创建噪声音符
func Noise(start, duration, volume float64) Note {
	return Note{Wave: WaveNoise, Start: start, Duration: duration, Volume: volume, Attack: 0.002}
}

// end 音符结束时间
func (n Note) end() float64 {
	return n.Start + n.Duration
}

// Length 返回一组音符的总时长（秒）
func Length(notes []Note) float64 {
	total := 0.0
	for _, n := range notes {
		if e := n.end(); e > total {
			total = e
		}
	}
	return total
}

// Render 将音符混合为 PCM 数据
//
// 返回的字节数恰好为 帧数 × 4，帧数 = ceil(总时长 × SampleRate)
// 混合结果在写入前被钳制到 [-1, 1]
func Render(notes []Note) []byte {
	frames := int(math.Ceil(Length(notes) * SampleRate))
	if frames <= 0 {
		return nil
	}

	mix := make([]float64, frames)
	// 固定种子，保证同一音效每次合成结果一致
	noise := rand.New(rand.NewSource(1))

	for _, n := range notes {
		renderNote(mix, n, noise)
	}

	pcm := make([]byte, frames*bytesPerFrame)
	for i, v := range mix {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := int16(v * math.MaxInt16)
		// 左右声道相同
		pcm[i*bytesPerFrame] = byte(s)
		pcm[i*bytesPerFrame+1] = byte(s >> 8)
		pcm[i*bytesPerFrame+2] = byte(s)
		pcm[i*bytesPerFrame+3] = byte(s >> 8)
	}
	return pcm
}

// renderNote 将单个音符叠加到混合缓冲区
func renderNote(mix []float64, n Note, noise *rand.Rand) {
	if n.Duration <= 0 || n.Volume <= 0 {
		return
	}

	first := int(n.Start * SampleRate)
	count := int(n.Duration * SampleRate)
	endFreq := n.EndFreq
	if endFreq == 0 {
		endFreq = n.StartFreq
	}

	phase := 0.0
	for i := 0; i < count; i++ {
		idx := first + i
		if idx < 0 || idx >= len(mix) {
			continue
		}

		t := float64(i) / SampleRate
		progress := float64(i) / float64(count)
		freq := n.StartFreq + (endFreq-n.StartFreq)*progress
		phase += freq / SampleRate
		phase -= math.Floor(phase)

		mix[idx] += sample(n.Wave, phase, noise) * envelope(t, n.Attack, progress) * n.Volume
	}
}

// sample 计算单个波形采样，phase 取值 [0, 1)
func sample(wave Waveform, phase float64, noise *rand.Rand) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	case WaveNoise:
		return noise.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope 起音线性上升，之后线性衰减到 0
func envelope(t, attack, progress float64) float64 {
	if attack > 0 && t < attack {
		return t / attack
	}
	return 1 - progress
}
