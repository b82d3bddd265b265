package param

// Builder provides a fluent API for describing parameters
type Builder struct {
	info Info
}

// New creates a new parameter builder
func New(addr Address, name string) *Builder {
	return &Builder{
		info: Info{
			Address:   addr,
			Name:      name,
			ShortName: name,
			Min:       0,
			Max:       1,
			Default:   0,
		},
	}
}

// ShortName sets the short name
func (b *Builder) ShortName(name string) *Builder {
	b.info.ShortName = name
	return b
}

// Range sets the min and max plain values
func (b *Builder) Range(min, max float64) *Builder {
	b.info.Min = min
	b.info.Max = max
	return b
}

// Default sets the default plain value
func (b *Builder) Default(value float64) *Builder {
	b.info.Default = value
	return b
}

// Unit sets the unit string
func (b *Builder) Unit(unit string) *Builder {
	b.info.Unit = unit
	return b
}

// Toggle makes this a boolean parameter (0 = off, 1 = on)
func (b *Builder) Toggle() *Builder {
	b.info.Min = 0
	b.info.Max = 1
	b.info.Default = 0
	b.info.Stepped = true
	b.info.formatFunc = SwitchFormatter
	b.info.parseFunc = SwitchParser
	return b
}

// Formatter sets custom value formatting and parsing
func (b *Builder) Formatter(format func(float64) string, parse func(string) (float64, error)) *Builder {
	b.info.formatFunc = format
	b.info.parseFunc = parse
	return b
}

// Build returns the described parameter
func (b *Builder) Build() Info {
	if b.info.Default < b.info.Min {
		b.info.Default = b.info.Min
	}
	if b.info.Default > b.info.Max {
		b.info.Default = b.info.Max
	}
	return b.info
}
