package twm

import (
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"maps"
	"sort"
	"strings"
	"sync"
)

// classMap maps original class lists to their generated class names. It
// is process-wide and guarded by classMapMutex.
var (
	classMap      = make(map[string]string)
	classMapMutex sync.RWMutex
)

// Generate returns a short deterministic class name for a class list.
// The name is derived from the merged form, so class lists that merge
// equally share one name. Generated names are recorded for GetMapping
// and GenerateClassMapCode.
func Generate(classes string) string {
	classMapMutex.RLock()
	if className, ok := classMap[classes]; ok {
		classMapMutex.RUnlock()
		return className
	}
	classMapMutex.RUnlock()

	merged := Merge(classes)
	hash := sha1.Sum([]byte(merged))
	className := "tw-" + base64.URLEncoding.EncodeToString(hash[:])[:7]

	classMapMutex.Lock()
	classMap[classes] = className
	classMapMutex.Unlock()

	return className
}

// RegisterClasses pre-registers class lists with their generated class
// names, so templates can rely on stable names without generating them
// at runtime.
func RegisterClasses(mapping map[string]string) {
	classMapMutex.Lock()
	defer classMapMutex.Unlock()
	maps.Copy(classMap, mapping)
}

// GetMapping returns a copy of the registered class-name mapping.
func GetMapping() map[string]string {
	classMapMutex.RLock()
	defer classMapMutex.RUnlock()

	mapping := make(map[string]string, len(classMap))
	maps.Copy(mapping, classMap)
	return mapping
}

// ClearMapping resets the registered class-name mapping.
func ClearMapping() {
	classMapMutex.Lock()
	defer classMapMutex.Unlock()
	classMap = make(map[string]string)
}

// GenerateClassMapCode renders the registered mapping as a Go source
// file for the given package, for build steps that want the mapping
// compiled in instead of computed at runtime.
func GenerateClassMapCode(pkgName string) string {
	mapping := GetMapping()
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("// Code generated by twm. DO NOT EDIT.\n\n")
	sb.WriteString("package " + pkgName + "\n\n")
	sb.WriteString("// ClassMap maps original class lists to generated class names.\n")
	sb.WriteString("var ClassMap = map[string]string{\n")
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("\t%q: %q,\n", k, mapping[k]))
	}
	sb.WriteString("}\n")
	return sb.String()
}
