package typegen

// UnknownType is emitted for scalars that have no mapping.
const UnknownType = "any"

var builtinPrimitives = map[string]string{
	"String":  "string",
	"Int":     "number",
	"Float":   "number",
	"Boolean": "boolean",
	"ID":      "string",
}

// ScalarRegistry maps schema scalars to TypeScript primitives.
type ScalarRegistry struct {
	scalars    map[string]string
	primitives map[string]string
}

// NewScalarRegistry overlays the configured scalars on the built-in
// primitives.
func NewScalarRegistry(scalars map[string]string) *ScalarRegistry {
	r := &ScalarRegistry{
		scalars:    make(map[string]string, len(scalars)),
		primitives: make(map[string]string, len(builtinPrimitives)+len(scalars)),
	}
	for k, v := range builtinPrimitives {
		r.primitives[k] = v
	}
	for k, v := range scalars {
		r.scalars[k] = v
		r.primitives[k] = v
	}
	return r
}

// ResolveScalar returns the configured mapping for a custom scalar
// declaration, or UnknownType.
func (r *ScalarRegistry) ResolveScalar(baseType string) string {
	if v, ok := r.scalars[baseType]; ok {
		return v
	}
	return UnknownType
}

// Primitive returns the primitive a base type maps to, if any.
func (r *ScalarRegistry) Primitive(baseType string) (string, bool) {
	v, ok := r.primitives[baseType]
	return v, ok && v != ""
}

func (r *ScalarRegistry) IsPrimitive(baseType string) bool {
	_, ok := r.Primitive(baseType)
	return ok
}
