package place

import (
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Schema identifies which field naming a places document uses.
type Schema int

const (
	SchemaUnknown Schema = iota
	SchemaCanonical
	SchemaLegacy
)

func (s Schema) String() string {
	switch s {
	case SchemaCanonical:
		return "canonical"
	case SchemaLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Decoding errors
var (
	ErrSchemaDrift   = errors.New("document mixes canonical and legacy places")
	ErrUnknownSchema = errors.New("unrecognized place schema")
)

// Document is a decoded places file. Exactly one of Places and Legacy is
// populated, depending on Schema.
type Document struct {
	Schema Schema
	Places []PlaceObject
	Legacy []LegacyPlace
}

// DetectSchema inspects a JSON array of places and reports its naming
// scheme. Every element must use the same one.
func DetectSchema(data []byte) (Schema, error) {
	if !gjson.ValidBytes(data) {
		return SchemaUnknown, errors.Wrap(ErrUnknownSchema, "malformed JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return SchemaUnknown, errors.Wrap(ErrUnknownSchema, "expected an array of places")
	}

	schema := SchemaUnknown
	var err error
	i := -1
	root.ForEach(func(_, value gjson.Result) bool {
		i++
		s, serr := schemaOf(value)
		if serr != nil {
			err = errors.Wrapf(serr, "element %d", i)
			return false
		}
		if schema != SchemaUnknown && s != schema {
			err = errors.Wrapf(ErrSchemaDrift, "element %d is %s, expected %s", i, s, schema)
			return false
		}
		schema = s
		return true
	})
	if err != nil {
		return SchemaUnknown, err
	}
	if schema == SchemaUnknown {
		// Empty array.
		return SchemaCanonical, nil
	}
	return schema, nil
}

func schemaOf(v gjson.Result) (Schema, error) {
	if !v.IsObject() {
		return SchemaUnknown, ErrUnknownSchema
	}
	canonical := hasAny(v, "name", "location", "activities")
	legacy := hasAny(v, "nazwa", "lokalizacja", "zajecia")

	switch {
	case canonical && legacy:
		return SchemaUnknown, ErrSchemaDrift
	case canonical:
		if anyChildHas(v.Get("activities"), "nazwa", "typ", "wiek", "strona_internetowa") {
			return SchemaUnknown, ErrSchemaDrift
		}
		return SchemaCanonical, nil
	case legacy:
		if anyChildHas(v.Get("zajecia"), "name", "type", "ageGroups", "website") {
			return SchemaUnknown, ErrSchemaDrift
		}
		return SchemaLegacy, nil
	default:
		return SchemaUnknown, ErrUnknownSchema
	}
}

func hasAny(v gjson.Result, fields ...string) bool {
	for _, f := range fields {
		if v.Get(f).Exists() {
			return true
		}
	}
	return false
}

func anyChildHas(arr gjson.Result, fields ...string) bool {
	found := false
	arr.ForEach(func(_, child gjson.Result) bool {
		found = hasAny(child, fields...)
		return !found
	})
	return found
}

// Decode detects the schema of data and unmarshals it accordingly.
func Decode(data []byte) (*Document, error) {
	schema, err := DetectSchema(data)
	if err != nil {
		return nil, err
	}

	doc := &Document{Schema: schema}
	switch schema {
	case SchemaLegacy:
		err = json.Unmarshal(data, &doc.Legacy)
	default:
		err = json.Unmarshal(data, &doc.Places)
	}
	if err != nil {
		return nil, errors.Wrap(err, "decode places")
	}
	return doc, nil
}

// Canonical returns the document's places in the canonical schema,
// converting legacy input.
func (d *Document) Canonical() ([]PlaceObject, error) {
	if d.Schema != SchemaLegacy {
		return d.Places, nil
	}
	places := make([]PlaceObject, 0, len(d.Legacy))
	for _, lp := range d.Legacy {
		p, err := FromLegacy(lp)
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	return places, nil
}

// Validate runs the schema-appropriate validation over the document.
func (d *Document) Validate() error {
	if d.Schema == SchemaLegacy {
		return ValidateAllLegacy(d.Legacy)
	}
	return ValidateAll(d.Places)
}
