package spectrum

import (
	"sort"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

// Magnitude writes |X[k]| for each bin into dst and returns dst, grown if
// needed. Scratch buffers are pooled, so in steady state this does not
// allocate when dst is large enough.
func Magnitude(dst []float64, in []complex128) []float64 {
	if len(in) == 0 {
		return dst[:0]
	}
	if cap(dst) < len(in) {
		dst = make([]float64, len(in))
	}
	dst = dst[:len(in)]

	re, im, buf := getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	vecmath.Magnitude(dst, re, im)
	scratchPool.Put(buf)
	return dst
}

// Smooth writes a centered moving average of src over 2*halfWidth+1 bins
// into dst. Near the edges the average covers the bins available.
// dst and src must not overlap.
func Smooth(dst, src []float64, halfWidth int) {
	n := min(len(dst), len(src))
	if halfWidth <= 0 {
		copy(dst[:n], src[:n])
		return
	}
	for i := 0; i < n; i++ {
		lo := max(0, i-halfWidth)
		hi := min(n, i+halfWidth+1)
		sum := 0.0
		for _, v := range src[lo:hi] {
			sum += v
		}
		dst[i] = sum / float64(hi-lo)
	}
}

// Peak is a local maximum of a magnitude spectrum.
type Peak struct {
	Bin   float64 // fractional bin index after parabolic interpolation
	Level float64 // interpolated magnitude in dB
}

// FindPeaks returns the local maxima of mag between bins lo and hi
// (inclusive, clipped to the interior of mag) in ascending bin order.
// Each peak is refined by fitting a parabola through the dB levels of the
// peak bin and its two neighbours.
func FindPeaks(mag []float64, lo, hi int) []Peak {
	lo = max(lo, 1)
	hi = min(hi, len(mag)-2)

	var peaks []Peak
	for k := lo; k <= hi; k++ {
		if !(mag[k] > mag[k-1] && mag[k] >= mag[k+1]) {
			continue
		}
		a := toDB(mag[k-1])
		b := toDB(mag[k])
		c := toDB(mag[k+1])
		offset, level := 0.0, b
		if den := a - 2*b + c; den < 0 {
			offset = 0.5 * (a - c) / den
			level = b - 0.25*(a-c)*offset
		}
		peaks = append(peaks, Peak{Bin: float64(k) + offset, Level: level})
	}
	return peaks
}

// Strongest returns up to n peaks with the highest levels, kept in
// ascending bin order.
func Strongest(peaks []Peak, n int) []Peak {
	if n <= 0 || len(peaks) <= n {
		return peaks
	}
	byLevel := append([]Peak(nil), peaks...)
	sort.SliceStable(byLevel, func(i, j int) bool { return byLevel[i].Level > byLevel[j].Level })
	byLevel = byLevel[:n]
	sort.Slice(byLevel, func(i, j int) bool { return byLevel[i].Bin < byLevel[j].Bin })
	return byLevel
}

// ToDB converts linear magnitudes in src to dB in dst, flooring at floor.
func ToDB(dst, src []float64, floor float64) {
	n := min(len(dst), len(src))
	for i := 0; i < n; i++ {
		dst[i] = max(toDB(src[i]), floor)
	}
}
