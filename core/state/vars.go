// Package state holds the mutable pieces of a shell session: the
// variable store and the directory stack.
package state

import (
	"os"
	"regexp"
	"sort"
	"sync"
)

var nameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsValidName reports whether name is a legal shell variable name.
func IsValidName(name string) bool {
	return nameRegexp.MatchString(name)
}

// value is either a plain string or an array; never both.
type value struct {
	str   string
	list  []string
	array bool
}

// Vars is an in-memory shell variable store. Variables hold either a
// string or an array of strings; referencing an array by name yields
// its first element, like the shells it imitates.
type Vars struct {
	rw   sync.RWMutex
	vals map[string]value
}

// NewVars creates an empty variable store.
func NewVars() *Vars {
	return &Vars{}
}

// SetString binds a string value to name, replacing any prior value.
func (v *Vars) SetString(name, val string) {
	v.rw.Lock()
	defer v.rw.Unlock()

	if v.vals == nil {
		v.vals = make(map[string]value)
	}
	v.vals[name] = value{str: val}
}

// SetArray binds a copy of parts to name, replacing any prior value.
func (v *Vars) SetArray(name string, parts []string) {
	v.rw.Lock()
	defer v.rw.Unlock()

	if v.vals == nil {
		v.vals = make(map[string]value)
	}
	v.vals[name] = value{list: append([]string(nil), parts...), array: true}
}

// Lookup retrieves the string value of name. Arrays yield their first
// element. The boolean is false when the variable is unset.
func (v *Vars) Lookup(name string) (string, bool) {
	v.rw.RLock()
	defer v.rw.RUnlock()

	val, ok := v.vals[name]
	switch {
	case !ok:
		return "", false
	case val.array:
		if len(val.list) == 0 {
			return "", true
		}
		return val.list[0], true
	default:
		return val.str, true
	}
}

// Get retrieves the string value of name, or "" when unset.
func (v *Vars) Get(name string) string {
	val, _ := v.Lookup(name)
	return val
}

// GetArray retrieves a copy of the array bound to name. The boolean is
// false when name is unset or holds a plain string.
func (v *Vars) GetArray(name string) ([]string, bool) {
	v.rw.RLock()
	defer v.rw.RUnlock()

	val, ok := v.vals[name]
	if !ok || !val.array {
		return nil, false
	}
	return append([]string(nil), val.list...), true
}

// Unset removes name from the store.
func (v *Vars) Unset(name string) {
	v.rw.Lock()
	defer v.rw.Unlock()
	delete(v.vals, name)
}

// Names returns the sorted names of all set variables.
func (v *Vars) Names() []string {
	v.rw.RLock()
	defer v.rw.RUnlock()

	var names []string
	for k := range v.vals {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Expand replaces ${var} or $var references in s with their values.
// Unset variables expand to the empty string.
func (v *Vars) Expand(s string) string {
	return os.Expand(s, v.Get)
}
