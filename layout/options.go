package layout

// Option is a functional option for configuring an Engine.
type Option func(*Engine)

// WithCompanyName sets the company name shown in the page header.
func WithCompanyName(name string) Option {
	return func(e *Engine) {
		e.company = name
	}
}

// WithAssets supplies the startup-loaded resources (logo, custom font,
// letterhead) the engine renders with.
func WithAssets(a Assets) Option {
	return func(e *Engine) {
		e.assets = a
	}
}

// WithDecorator replaces the default page decoration. The decorator is
// invoked at the start of every page, before any flow content, with
// the current page number and document title. It must draw at absolute
// positions only and leave the flow cursor untouched.
func WithDecorator(fn DecorateFunc) Option {
	return func(e *Engine) {
		e.decorate = fn
	}
}
