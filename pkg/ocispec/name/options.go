package name

func makeOptions(opts ...Option) options {
	var opt options
	for _, o := range opts {
		o(&opt)
	}
	return opt
}

type options struct {
	strict bool
}

// Option is a functional option for reference parsing.
type Option func(*options)

// WithStrict sets the parse mode. When set to "true", the reference must
// name its registry explicitly and carry a tag, a digest or both. Nothing
// is defaulted in either mode.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}
