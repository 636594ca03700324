package schemas

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/mitchellh/mapstructure"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/flameshq/flames/internal/domain"
	"github.com/flameshq/flames/internal/validation"
)

// Validate checks raw against the model of collection. On success it returns
// the record with defaults filled in. Rule failures are returned as
// validation.Errors holding one entry per failing field.
func (c *Catalog) Validate(collection string, raw map[string]interface{}) (domain.Record, error) {
	m, err := c.model(collection)
	if err != nil {
		return nil, err
	}

	values, errs := m.normalize(raw, !c.strict)

	doc := m.newDocument()
	if err := decodeDocument(values, doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}

	if err := c.engine.Struct(doc); err != nil {
		var ruleErrs validation.Errors
		if !errors.As(err, &ruleErrs) {
			return nil, err
		}
		for _, fe := range ruleErrs {
			if !errs.Has(fe.Field) {
				errs = append(errs, fe)
			}
		}
	}

	if len(errs) > 0 {
		sort.SliceStable(errs, func(i, j int) bool {
			return m.index[errs[i].Field] < m.index[errs[j].Field]
		})
		zap.L().Debug("document rejected",
			zap.String("collection", collection),
			zap.Strings("fields", errs.Fields()))
		return nil, errs
	}
	return doc.ToRecord(), nil
}

// ValidateJSON validates a JSON object, e.g. a request body
func (c *Catalog) ValidateJSON(collection string, data []byte) (domain.Record, error) {
	if _, err := c.model(collection); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: document is null", ErrMalformedDocument)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after object", ErrMalformedDocument)
	}
	return c.Validate(collection, raw)
}

// ValidateDocument validates a document read back from storage. The _id key
// and any other key outside the model are ignored.
func (c *Catalog) ValidateDocument(collection string, raw bson.Raw) (domain.Record, error) {
	if _, err := c.model(collection); err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return c.Validate(collection, doc)
}

// normalize keeps the model's fields from raw, applies defaults and converts
// each value to its field kind. Values that are null where not allowed, or of
// the wrong type, are left out and reported.
func (m *Model) normalize(raw map[string]interface{}, lax bool) (map[string]interface{}, validation.Errors) {
	values := make(map[string]interface{}, len(m.fields))
	var errs validation.Errors
	for _, f := range m.fields {
		v, present := raw[f.Name]
		switch {
		case !present:
			if f.HasDefault() {
				values[f.Name] = f.Default
			}
			continue
		case v == nil:
			if !f.Nullable {
				errs = append(errs, validation.FieldError{
					Field:   f.Name,
					Rule:    validation.RuleNull,
					Message: validation.Message(validation.RuleNull, "", 0),
				})
			}
			continue
		}
		cv, ok := coerce(f.Type, v, lax)
		if !ok {
			errs = append(errs, validation.FieldError{
				Field:   f.Name,
				Rule:    validation.RuleType,
				Param:   string(f.Type),
				Message: validation.Message(validation.RuleType, string(f.Type), 0),
			})
			continue
		}
		values[f.Name] = cv
	}
	return values, errs
}

func decodeDocument(values map[string]interface{}, doc Document) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  doc,
	})
	if err != nil {
		return err
	}
	return dec.Decode(values)
}
