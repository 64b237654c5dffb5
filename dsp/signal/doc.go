// Package signal generates simple excitation signals for driving the tract
// offline: impulse trains for voiced sound and white noise for whispering.
package signal
