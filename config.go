package twoq

// Option configures how [NewWithSize] splits its size between the queues.
type Option func(c *config)

type config struct {
	inRatio  float64
	outRatio float64
}

func defaultConfig() config {
	return config{
		inRatio:  0.25,
		outRatio: 0.5,
	}
}

// WithInRatio sets the share of the size given to the in queue. Defaults to 0.25.
func WithInRatio(ratio float64) Option {
	return func(c *config) {
		c.inRatio = ratio
	}
}

// WithOutRatio sets the share of the size given to the out queue. Defaults to 0.5.
// The main queue receives whatever remains after in and out.
func WithOutRatio(ratio float64) Option {
	return func(c *config) {
		c.outRatio = ratio
	}
}

func (c config) validate() error {
	if c.inRatio < 0 || c.inRatio > 1 {
		return ratioError("in ratio must be within [0, 1] but %v was requested", c.inRatio)
	}
	if c.outRatio < 0 || c.outRatio > 1 {
		return ratioError("out ratio must be within [0, 1] but %v was requested", c.outRatio)
	}
	if c.inRatio+c.outRatio > 1 {
		return ratioError("in and out ratios must sum to <=1 but %v was requested", c.inRatio+c.outRatio)
	}
	return nil
}

// split divides size into the three queue capacities.
func (c config) split(size int) (in, out, main int) {
	in = int(float64(size) * c.inRatio)
	out = int(float64(size) * c.outRatio)
	main = size - in - out
	return
}
