package deck

// Option configures Build.
type Option func(*options)

type options struct {
	styled bool
}

func defaultOptions() *options {
	return &options{styled: true}
}

// WithoutStyling builds a plain deck: no forced backgrounds, fills, colours,
// font sizes or alignment. Slide order and content stay the same.
func WithoutStyling() Option {
	return func(o *options) { o.styled = false }
}

// WithStyling toggles styling; WithStyling(false) equals WithoutStyling().
func WithStyling(enabled bool) Option {
	return func(o *options) { o.styled = enabled }
}
