package config

// Builder constructs a description tree incrementally. It shapes input into
// the whitelisted field set of each resource kind, applying the defaults the
// remote API documents. No remote I/O and no validation; missing or invalid
// fields are simply carried as-is or dropped by the typed shape.
type Builder struct {
	desc Description
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetAccountID sets the account the tree belongs to.
func (b *Builder) SetAccountID(id string) *Builder {
	b.desc.AccountID = id
	return b
}

// SetWebProperty sets the web property, applying defaults.
func (b *Builder) SetWebProperty(p WebPropertyDesc) *Builder {
	shapeWebProperty(&p)
	b.desc.WebProperty = &p
	return b
}

// AddView appends a view together with its goals and filters, each shaped
// with defaults applied.
func (b *Builder) AddView(v ViewDesc, goals []GoalDesc, filters []FilterDesc) *Builder {
	shapeView(&v)
	v.Goals = append(v.Goals, goals...)
	v.Filters = append(v.Filters, filters...)
	b.desc.Views = append(b.desc.Views, v)
	return b
}

// SetCustomDimensions replaces the custom dimension list.
func (b *Builder) SetCustomDimensions(dims []CustomDimensionDesc) *Builder {
	b.desc.CustomDimensions = append([]CustomDimensionDesc(nil), dims...)
	return b
}

// SetCustomMetrics replaces the custom metric list.
func (b *Builder) SetCustomMetrics(metrics []CustomMetricDesc) *Builder {
	b.desc.CustomMetrics = append([]CustomMetricDesc(nil), metrics...)
	return b
}

// Description returns a snapshot of the tree built so far. The snapshot is
// a deep copy; further builder calls do not affect it.
func (b *Builder) Description() *Description {
	return b.desc.Clone()
}

func shapeWebProperty(p *WebPropertyDesc) {
	if p.IndustryVertical == "" {
		p.IndustryVertical = DefaultIndustryVertical
	}
}

func shapeView(v *ViewDesc) {
	if v.Type == "" {
		v.Type = DefaultViewType
	}
}
