// internal/rules/buckets.go
//
// Every dimension bucket shares the same compound-match rule: a value
// is admitted when at least one acceptable matcher matches it AND no
// unacceptable matcher matches it. An empty acceptable side is seeded
// with that dimension's Any matcher, so an unconfigured bucket admits
// everything until an unacceptable rule narrows it.
package rules

import "sort"

// HostBucket is the host dimension of a Route.
type HostBucket struct {
	Acceptable   []HostKind
	Unacceptable []HostKind
}

// NewHostBucket builds a bucket from a flat list of matchers, seeding
// the acceptable side with HostAny() when no acceptable matcher is given.
func NewHostBucket(matchers []HostMatcher) HostBucket {
	var b HostBucket
	b.Extend(matchers)
	if len(b.Acceptable) == 0 {
		b.Acceptable = append(b.Acceptable, HostAny())
	}
	return b
}

// Extend appends matchers into their respective permission side.
func (b *HostBucket) Extend(matchers []HostMatcher) {
	for _, m := range matchers {
		if m.Permission == Unacceptable {
			b.Unacceptable = append(b.Unacceptable, m.Kind)
		} else {
			b.Acceptable = append(b.Acceptable, m.Kind)
		}
	}
}

// Matches reports whether host is admitted by this bucket.
func (b HostBucket) Matches(host string) bool {
	matched := false
	for _, k := range b.Acceptable {
		if k.Matches(host) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, k := range b.Unacceptable {
		if k.Matches(host) {
			return false
		}
	}
	return true
}

func (b HostBucket) String() string {
	return bucketString("Hosts", stringers(b.Acceptable), stringers(b.Unacceptable))
}

// SchemeBucket is the scheme dimension of a Route.
type SchemeBucket struct {
	Acceptable   []SchemeKind
	Unacceptable []SchemeKind
}

func NewSchemeBucket(matchers []SchemeMatcher) SchemeBucket {
	var b SchemeBucket
	b.Extend(matchers)
	if len(b.Acceptable) == 0 {
		b.Acceptable = append(b.Acceptable, SchemeAnySupported)
	}
	return b
}

func (b *SchemeBucket) Extend(matchers []SchemeMatcher) {
	for _, m := range matchers {
		if m.Permission == Unacceptable {
			b.Unacceptable = append(b.Unacceptable, m.Kind)
		} else {
			b.Acceptable = append(b.Acceptable, m.Kind)
		}
	}
}

func (b SchemeBucket) Matches(scheme string) bool {
	matched := false
	for _, k := range b.Acceptable {
		if k.Matches(scheme) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, k := range b.Unacceptable {
		if k.Matches(scheme) {
			return false
		}
	}
	return true
}

func (b SchemeBucket) String() string {
	return bucketString("Schemes", stringers(b.Acceptable), stringers(b.Unacceptable))
}

// PortBucket is the port dimension of a Route.
type PortBucket struct {
	Acceptable   []PortKind
	Unacceptable []PortKind
}

func NewPortBucket(matchers []PortMatcher) PortBucket {
	var b PortBucket
	b.Extend(matchers)
	if len(b.Acceptable) == 0 {
		b.Acceptable = append(b.Acceptable, PortAny())
	}
	return b
}

func (b *PortBucket) Extend(matchers []PortMatcher) {
	for _, m := range matchers {
		if m.Permission == Unacceptable {
			b.Unacceptable = append(b.Unacceptable, m.Kind)
		} else {
			b.Acceptable = append(b.Acceptable, m.Kind)
		}
	}
}

func (b PortBucket) Matches(port uint16) bool {
	matched := false
	for _, k := range b.Acceptable {
		if k.Matches(port) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, k := range b.Unacceptable {
		if k.Matches(port) {
			return false
		}
	}
	return true
}

func (b PortBucket) String() string {
	return bucketString("Ports", stringers(b.Acceptable), stringers(b.Unacceptable))
}

// PathBucket is the path dimension of a Route.
type PathBucket struct {
	Acceptable   []PathKind
	Unacceptable []PathKind
}

func NewPathBucket(matchers []PathMatcher) PathBucket {
	var b PathBucket
	b.Extend(matchers)
	if len(b.Acceptable) == 0 {
		b.Acceptable = append(b.Acceptable, PathAny())
	}
	return b
}

func (b *PathBucket) Extend(matchers []PathMatcher) {
	for _, m := range matchers {
		if m.Permission == Unacceptable {
			b.Unacceptable = append(b.Unacceptable, m.Kind)
		} else {
			b.Acceptable = append(b.Acceptable, m.Kind)
		}
	}
}

func (b PathBucket) Matches(path string) bool {
	matched := false
	for _, k := range b.Acceptable {
		if k.Matches(path) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, k := range b.Unacceptable {
		if k.Matches(path) {
			return false
		}
	}
	return true
}

func (b PathBucket) String() string {
	return bucketString("Paths", stringers(b.Acceptable), stringers(b.Unacceptable))
}

// MethodBucket is the method dimension of a Route.
type MethodBucket struct {
	Acceptable   []MethodKind
	Unacceptable []MethodKind
}

func NewMethodBucket(matchers []MethodMatcher) MethodBucket {
	var b MethodBucket
	b.Extend(matchers)
	if len(b.Acceptable) == 0 {
		b.Acceptable = append(b.Acceptable, MethodAnySupported)
	}
	return b
}

func (b *MethodBucket) Extend(matchers []MethodMatcher) {
	for _, m := range matchers {
		if m.Permission == Unacceptable {
			b.Unacceptable = append(b.Unacceptable, m.Kind)
		} else {
			b.Acceptable = append(b.Acceptable, m.Kind)
		}
	}
}

func (b MethodBucket) Matches(method string) bool {
	matched := false
	for _, k := range b.Acceptable {
		if k.Matches(method) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, k := range b.Unacceptable {
		if k.Matches(method) {
			return false
		}
	}
	return true
}

func (b MethodBucket) String() string {
	return bucketString("Methods", stringers(b.Acceptable), stringers(b.Unacceptable))
}

type stringer interface{ String() string }

func stringers[T stringer](kinds []T) []string {
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, k.String())
	}
	sort.Strings(out)
	return out
}

func bucketString(name string, acceptable, unacceptable []string) string {
	join := func(parts []string) string {
		out := ""
		for i, p := range parts {
			if i > 0 {
				out += ", "
			}
			out += p
		}
		return out
	}
	return name + " { acceptable: [" + join(acceptable) + "], unacceptable: [" + join(unacceptable) + "] }"
}
