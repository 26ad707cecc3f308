package formula

// Lookup finds the value of a variable. ok is false if the variable is
// undefined. A nil Lookup defines no variables.
type Lookup func(name string) (v float64, ok bool)

func (l Lookup) get(name string) (float64, bool) {
	if l == nil {
		return 0, false
	}
	return l(name)
}

// MapLookup creates a Lookup that defines the variables in vars. Later
// changes to vars are visible through the Lookup.
func MapLookup(vars map[string]float64) Lookup {
	return func(name string) (float64, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

// ConstLookup creates a Lookup that defines every variable as v.
func ConstLookup(v float64) Lookup {
	return func(string) (float64, bool) {
		return v, true
	}
}

// Chain creates a Lookup that tries each of lookups in order and uses the
// first one that defines a variable.
func Chain(lookups ...Lookup) Lookup {
	return func(name string) (float64, bool) {
		for _, l := range lookups {
			if v, ok := l.get(name); ok {
				return v, true
			}
		}
		return 0, false
	}
}
