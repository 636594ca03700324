package schemas

// CollectionSchema is the discovery metadata of one collection, the shape a
// schema endpoint or viewer serializes as is.
type CollectionSchema struct {
	Name        string                 `json:"name" yaml:"name"`
	Title       string                 `json:"title" yaml:"title"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []Field                `json:"fields" yaml:"fields"`
	Required    []string               `json:"required" yaml:"required"`
	Example     map[string]interface{} `json:"example,omitempty" yaml:"example,omitempty"`
}

// Describe returns the metadata of every collection, sorted by name
func (c *Catalog) Describe() []CollectionSchema {
	names := c.Collections()
	out := make([]CollectionSchema, 0, len(names))
	for _, name := range names {
		out = append(out, c.models[name].describe())
	}
	return out
}

// DescribeCollection returns the metadata of a single collection
func (c *Catalog) DescribeCollection(collection string) (CollectionSchema, error) {
	m, err := c.model(collection)
	if err != nil {
		return CollectionSchema{}, err
	}
	return m.describe(), nil
}

func (m *Model) describe() CollectionSchema {
	required := m.RequiredFields()
	if required == nil {
		required = []string{}
	}
	return CollectionSchema{
		Name:        m.Collection,
		Title:       m.Name,
		Description: m.Description,
		Fields:      m.Fields(),
		Required:    required,
		Example:     m.Example,
	}
}
