package pattern

import (
	"strconv"
	"strings"
)

// VarInfo describes a single %...% placeholder: its declared type name
// (after the host's pluralization rule has split plurality out of the base
// name), whether it accepts multiple bound expressions, whether it is
// optional, and any requested tense shift.
type VarInfo struct {
	TypeName string
	IsPlural bool
	Optional bool
	Time     int // -1 past, 0 present (default), +1 future
}

// Pluralizer resolves a base placeholder name into (singular form, plural?)
// per the host's pluralization rule. Registries implement this; see
// internal/registry.
type Pluralizer func(name string) (base string, plural bool)

// ParseVarInfo parses a placeholder body (the text between the two '%',
// with the placeholder-name grammar `[-] baseName [ @ timeInt ]`) into a
// VarInfo, using pluralize to split plurality from the base name.
func ParseVarInfo(body string, pluralize Pluralizer) (VarInfo, error) {
	var vi VarInfo

	name := body
	if strings.HasPrefix(name, "-") {
		vi.Optional = true
		name = name[1:]
	}

	if at := strings.IndexByte(name, '@'); at != -1 {
		t, err := strconv.Atoi(name[at+1:])
		if err != nil {
			return VarInfo{}, malformed("%"+body+"%", "invalid @time suffix: "+err.Error())
		}
		vi.Time = t
		name = name[:at]
	}

	base, plural := pluralize(name)
	vi.TypeName = base
	vi.IsPlural = plural
	return vi, nil
}
