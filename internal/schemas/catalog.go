package schemas

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm/schema"

	"github.com/flameshq/flames/internal/domain"
	"github.com/flameshq/flames/internal/validation"
)

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrMalformedDocument = errors.New("malformed document")
	ErrNoExample         = errors.New("no example document")
)

// Model binds an input document shape to the collection it validates for
type Model struct {
	Name        string
	Collection  string
	Description string
	Example     map[string]interface{}

	fields    []Field
	index     map[string]int
	inputType reflect.Type
}

// Fields returns the field metadata in declaration order
func (m *Model) Fields() []Field {
	out := make([]Field, len(m.fields))
	copy(out, m.fields)
	return out
}

// Field returns the metadata of one field
func (m *Model) Field(name string) (Field, bool) {
	i, ok := m.index[name]
	if !ok {
		return Field{}, false
	}
	return m.fields[i], true
}

// RequiredFields lists the fields a document must carry
func (m *Model) RequiredFields() []string {
	var names []string
	for _, f := range m.fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

func (m *Model) newDocument() Document {
	return reflect.New(m.inputType).Interface().(Document)
}

// Catalog is the set of models known to the data layer, keyed by collection
type Catalog struct {
	models map[string]*Model
	engine *validation.Engine
	strict bool
}

type Option func(*Catalog)

// WithStrictTypes turns off string coercion for numeric and boolean fields
func WithStrictTypes() Option {
	return func(c *Catalog) {
		c.strict = true
	}
}

// WithValidator shares an existing validation engine
func WithValidator(engine *validation.Engine) Option {
	return func(c *Catalog) {
		c.engine = engine
	}
}

// New builds a catalog holding the User, Product and DemoRequest models
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{models: make(map[string]*Model)}
	for _, opt := range opts {
		opt(c)
	}
	if c.engine == nil {
		c.engine = validation.New()
	}
	c.MustRegister(Registration{Name: "User", Description: "Users collection schema",
		Input: &userModel{}, Record: &domain.User{}})
	c.MustRegister(Registration{Name: "Product", Description: "Products collection schema",
		Input: &productModel{}, Record: &domain.Product{}})
	c.MustRegister(Registration{Name: "DemoRequest", Description: "Demo requests from the landing page",
		Input: &demoRequestModel{}, Record: &domain.DemoRequest{}, Example: demoRequestExample})
	for _, rec := range domain.Tables {
		if _, ok := c.models[rec.TableName()]; !ok {
			panic(fmt.Sprintf("schemas: no model for collection %q", rec.TableName()))
		}
	}
	return c
}

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// Default returns a shared catalog with lax type coercion
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = NewCatalog()
	})
	return defaultCatalog
}

// Registration describes a model to add to a catalog. Input is a pointer to
// the tagged input struct and Record the storage record it produces.
type Registration struct {
	Name        string
	Description string
	Input       Document
	Record      domain.Record
	Example     map[string]interface{}
}

// MustRegister is Register that panics on error
func (c *Catalog) MustRegister(r Registration) {
	if err := c.Register(r); err != nil {
		panic(err)
	}
}

// Register derives field metadata from r.Input and checks it against the
// storage columns of r.Record. The collection name is the record's table
// name. Register before the catalog is shared between goroutines.
func (c *Catalog) Register(r Registration) error {
	if r.Input == nil || r.Record == nil {
		return fmt.Errorf("model %s: input and record are required", r.Name)
	}
	inputType := reflect.TypeOf(r.Input)
	if inputType.Kind() != reflect.Ptr {
		return fmt.Errorf("model %s: input must be a pointer to a struct", r.Name)
	}
	fields, err := parseFields(inputType)
	if err != nil {
		return err
	}
	s, err := schema.Parse(r.Record, &sync.Map{}, schema.NamingStrategy{SingularTable: true})
	if err != nil {
		return fmt.Errorf("model %s: %w", r.Name, err)
	}
	collection := s.Table
	if _, dup := c.models[collection]; dup {
		return fmt.Errorf("model %s: collection %q already registered", r.Name, collection)
	}

	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if s.LookUpField(f.Name) == nil {
			return fmt.Errorf("model %s: field %s has no column in %s", r.Name, f.Name, collection)
		}
		index[f.Name] = i
	}

	c.models[collection] = &Model{
		Name:        r.Name,
		Collection:  collection,
		Description: r.Description,
		Example:     r.Example,
		fields:      fields,
		index:       index,
		inputType:   inputType.Elem(),
	}
	zap.L().Debug("schema registered",
		zap.String("model", r.Name),
		zap.String("collection", collection),
		zap.Int("fields", len(fields)))
	return nil
}

// Validator returns the validation engine the catalog checks rules with
func (c *Catalog) Validator() *validation.Engine {
	return c.engine
}

// Collections returns the registered collection names in sorted order
func (c *Catalog) Collections() []string {
	names := make([]string, 0, len(c.models))
	for name := range c.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) Lookup(collection string) (*Model, bool) {
	m, ok := c.models[collection]
	return m, ok
}

func (c *Catalog) model(collection string) (*Model, error) {
	m, ok := c.models[collection]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	return m, nil
}

// Example returns a copy of the example document of a collection
func (c *Catalog) Example(collection string) (map[string]interface{}, error) {
	m, err := c.model(collection)
	if err != nil {
		return nil, err
	}
	if m.Example == nil {
		return nil, fmt.Errorf("%w for %q", ErrNoExample, collection)
	}
	out := make(map[string]interface{}, len(m.Example))
	for k, v := range m.Example {
		out[k] = v
	}
	return out, nil
}
