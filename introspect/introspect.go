// Package introspect normalizes topic and parameter records reported by a
// live node so they follow the same string conventions as the resolved
// interface model.
package introspect

import (
	"fmt"
	"strings"
)

// TopicInfo is one topic record reported by a node: the topic name and
// its advertised type strings.
type TopicInfo struct {
	Name  string
	Types []string
}

// NormalizeTopicTypes rewrites the primary type string of each record in
// place: a type lacking a package separator is double-quoted, and the
// msg/srv/action namespace separators collapse to a single dot
// ("pkg/msg/Type" becomes "pkg.Type").
func NormalizeTopicTypes(topics []TopicInfo) {
	for i := range topics {
		if len(topics[i].Types) == 0 {
			continue
		}
		t := topics[i].Types[0]
		if !strings.Contains(t, "/") {
			t = `"` + t + `"`
		}
		t = strings.ReplaceAll(t, "/msg/", ".")
		t = strings.ReplaceAll(t, "/srv/", ".")
		t = strings.ReplaceAll(t, "/action/", ".")
		topics[i].Types[0] = t
	}
}

// RelativizeTopicNames rewrites topic names private to the given node
// into the tilde-relative notation: the node's own name prefix becomes
// "~". Node names lacking a leading slash are rooted first. The input
// records are not modified.
func RelativizeTopicNames(nodeName string, topics []TopicInfo) []TopicInfo {
	if !strings.HasPrefix(nodeName, "/") {
		nodeName = "/" + nodeName
	}
	out := make([]TopicInfo, 0, len(topics))
	for _, topic := range topics {
		out = append(out, TopicInfo{
			Name:  strings.ReplaceAll(topic.Name, nodeName, "~"),
			Types: topic.Types,
		})
	}
	return out
}

// ParameterType is a parameter type code as reported by a node. The
// values match the rcl_interfaces ParameterType constants.
type ParameterType uint8

const (
	ParameterNotSet       ParameterType = 0
	ParameterBool         ParameterType = 1
	ParameterInteger      ParameterType = 2
	ParameterDouble       ParameterType = 3
	ParameterString       ParameterType = 4
	ParameterByteArray    ParameterType = 5
	ParameterBoolArray    ParameterType = 6
	ParameterIntegerArray ParameterType = 7
	ParameterDoubleArray  ParameterType = 8
	ParameterStringArray  ParameterType = 9
)

var parameterTypeNames = map[ParameterType]string{
	ParameterBool:         "Boolean",
	ParameterInteger:      "Integer",
	ParameterDouble:       "Double",
	ParameterString:       "String",
	ParameterByteArray:    "Array: Byte",
	ParameterBoolArray:    "Array: Boolean",
	ParameterIntegerArray: "Array: Integer",
	ParameterDoubleArray:  "Array: Double",
	ParameterStringArray:  "Array: String",
	ParameterNotSet:       "Any",
}

// ParameterTypeName returns the display name for a parameter type code.
// Codes outside the fixed known set fail; they are never defaulted.
func ParameterTypeName(t ParameterType) (string, error) {
	name, ok := parameterTypeNames[t]
	if !ok {
		return "", fmt.Errorf("unknown parameter type code %d", t)
	}
	return name, nil
}
