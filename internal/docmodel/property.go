package docmodel

// BoolProperty is a convention-with-override boolean: a lazily computed
// default (the convention) that explicit user configuration may override at
// most once. Reads resolve the explicit value if present, otherwise they
// evaluate the convention provider exactly once and cache the result.
type BoolProperty struct {
	explicit   *bool
	convention func() bool
	resolved   *bool
}

// Convention installs the lazy default provider. It may be replaced until
// the property has been read; installing a convention after resolution is a
// programmer error.
func (p *BoolProperty) Convention(f func() bool) {
	if p.resolved != nil {
		panic("docmodel: convention installed after property was read")
	}
	p.convention = f
}

// Set overrides the convention with an explicit value. A property can be
// overridden at most once; a second explicit set panics.
func (p *BoolProperty) Set(v bool) {
	if p.explicit != nil {
		panic("docmodel: property explicitly set twice")
	}
	p.explicit = &v
}

// IsExplicit reports whether the property carries an explicit override.
func (p *BoolProperty) IsExplicit() bool {
	return p.explicit != nil
}

// Get resolves the property: explicit override first, then the cached
// convention. A property with neither an override nor a convention reads
// as false.
func (p *BoolProperty) Get() bool {
	if p.explicit != nil {
		return *p.explicit
	}
	if p.resolved != nil {
		return *p.resolved
	}
	v := false
	if p.convention != nil {
		v = p.convention()
	}
	p.resolved = &v
	return v
}
