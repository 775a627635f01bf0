package svgpattern

import "strconv"

// DefaultIDPrefix prefixes element ids of a Manager created without
// WithIDPrefix.
const DefaultIDPrefix = "svg-pattern"

// Option configures a Manager during creation.
//
// Example:
//
//	m := svgpattern.NewManager(
//	    svgpattern.WithIDPrefix("app"),
//	    svgpattern.WithKeyGenerator(uuidKeys),
//	)
type Option func(*managerOptions)

// managerOptions holds optional configuration for Manager creation.
type managerOptions struct {
	idPrefix string
	keyGen   func() string
}

// defaultOptions returns the default manager options.
func defaultOptions() managerOptions {
	return managerOptions{
		idPrefix: DefaultIDPrefix,
		keyGen:   nil, // Will be a per-manager counter if nil
	}
}

// WithIDPrefix sets the prefix of generated element ids.
// An empty prefix keeps DefaultIDPrefix.
func WithIDPrefix(prefix string) Option {
	return func(o *managerOptions) {
		if prefix != "" {
			o.idPrefix = prefix
		}
	}
}

// WithKeyGenerator sets the function that names patterns added with an
// empty key. The default is a counter owned by the manager producing
// "pattern-1", "pattern-2", ...
//
// Calls to gen are serialized and made without the manager's lock held,
// so gen may call read methods such as Len or Has. It must not call Add
// with an empty key.
func WithKeyGenerator(gen func() string) Option {
	return func(o *managerOptions) {
		o.keyGen = gen
	}
}

// counterKeys returns a key generator backed by its own counter.
// The returned function is not safe for concurrent use; Manager
// serializes its calls.
func counterKeys(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}
