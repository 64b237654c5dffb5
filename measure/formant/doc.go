// Package formant estimates the resonances of a vocal tract from its impulse
// response.
//
// The response is tapered, zero-padded to a power of two, transformed with
// an FFT and searched for spectral peaks, refined by parabolic
// interpolation. A uniform tract of N segments at sample rate fs, closed at
// the glottis and open at the lips, resonates at odd multiples of
// fs/(4N); shaping the tract moves these peaks.
//
// # Usage
//
//	t, _ := tract.New(17.5, 44100)
//	t.Shape(phoneme, true)
//	res, err := formant.Measure(t)
//	for _, f := range res.Formants {
//		fmt.Printf("%.0f Hz\n", f.Frequency)
//	}
package formant
