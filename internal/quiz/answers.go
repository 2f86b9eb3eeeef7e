package quiz

// Question keys understood by the recommendation endpoint.
const (
	KeyProductType = "tipo_producto_general"
	KeyCraving     = "tipo_antojo"
	KeyBase        = "base"
	KeyFlavor      = "tipo_sabor"
)

// RecordKeys lists the keys serialized into a Record, in question order.
var RecordKeys = []string{KeyProductType, KeyCraving, KeyBase, KeyFlavor}

// Answers is the mutable response store for a single quiz attempt.
type Answers struct {
	values map[string]string
}

// NewAnswers returns an empty store.
func NewAnswers() *Answers {
	return &Answers{values: make(map[string]string)}
}

// Set records value under key, replacing any previous value.
func (a *Answers) Set(key, value string) {
	a.values[key] = value
}

// Get returns the value stored under key.
func (a *Answers) Get(key string) (string, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Len returns the number of keys in the store.
func (a *Answers) Len() int {
	return len(a.values)
}

// Keys returns a copy of every key currently held.
func (a *Answers) Keys() []string {
	keys := make([]string, 0, len(a.values))
	for k := range a.values {
		keys = append(keys, k)
	}
	return keys
}

// Clear deletes every key. Keys from a previous attempt must never leak
// into the next submission, so the map is emptied rather than overwritten.
func (a *Answers) Clear() {
	for k := range a.values {
		delete(a.values, k)
	}
}

// Record builds a fresh submission body from the four fixed keys only.
func (a *Answers) Record() Record {
	return Record{
		ProductType: a.values[KeyProductType],
		Craving:     a.values[KeyCraving],
		Base:        a.values[KeyBase],
		Flavor:      a.values[KeyFlavor],
	}
}

// Record is the JSON body posted to the recommendation endpoint.
// Unanswered keys are omitted from the encoding.
type Record struct {
	ProductType string `json:"tipo_producto_general,omitempty"`
	Craving     string `json:"tipo_antojo,omitempty"`
	Base        string `json:"base,omitempty"`
	Flavor      string `json:"tipo_sabor,omitempty"`
}

// Map returns the record as key/value pairs, skipping empty answers.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(RecordKeys))
	for _, k := range RecordKeys {
		if v := r.Value(k); v != "" {
			m[k] = v
		}
	}
	return m
}

// Value returns the answer for one of the fixed keys.
func (r Record) Value(key string) string {
	switch key {
	case KeyProductType:
		return r.ProductType
	case KeyCraving:
		return r.Craving
	case KeyBase:
		return r.Base
	case KeyFlavor:
		return r.Flavor
	}
	return ""
}

// Missing returns the fixed keys that have no answer.
func (r Record) Missing() []string {
	var missing []string
	for _, k := range RecordKeys {
		if r.Value(k) == "" {
			missing = append(missing, k)
		}
	}
	return missing
}

// Complete reports whether all four keys are answered.
func (r Record) Complete() bool {
	return len(r.Missing()) == 0
}
