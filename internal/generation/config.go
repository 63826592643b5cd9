package generation

import "time"

// Sampling holds the knobs sent with one kind of call. Zero values are
// left unset on the request.
type Sampling struct {
	Temperature float64
	TopP        float64
	TopK        int
}

// Config tunes the client.
type Config struct {
	Generate Sampling
	Revise   Sampling

	// Timeout bounds each call. Zero means no client-side limit.
	Timeout time.Duration

	// Now stamps the prompt date and year. Defaults to time.Now.
	Now func() time.Time
}

// DefaultConfig returns the sampling the lesson plans are tuned for:
// creative for fresh modules, more conservative for revisions.
func DefaultConfig() Config {
	return Config{
		Generate: Sampling{Temperature: 0.75, TopP: 0.95, TopK: 40},
		Revise:   Sampling{Temperature: 0.7},
		Timeout:  3 * time.Minute,
		Now:      time.Now,
	}
}
