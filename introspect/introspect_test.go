package introspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTopicTypes(t *testing.T) {
	topics := []TopicInfo{
		{Name: "/chatter", Types: []string{"std_msgs/msg/String"}},
		{Name: "/add", Types: []string{"demo/srv/Add"}},
		{Name: "/move", Types: []string{"demo/action/Move"}},
		{Name: "/raw", Types: []string{"String"}},
		{Name: "/silent", Types: nil},
	}

	NormalizeTopicTypes(topics)

	assert.Equal(t, "std_msgs.String", topics[0].Types[0])
	assert.Equal(t, "demo.Add", topics[1].Types[0])
	assert.Equal(t, "demo.Move", topics[2].Types[0])
	assert.Equal(t, `"String"`, topics[3].Types[0], "unqualified types are quoted")
	assert.Nil(t, topics[4].Types)
}

func TestRelativizeTopicNames(t *testing.T) {
	topics := []TopicInfo{
		{Name: "/my_node/status", Types: []string{"demo.Status"}},
		{Name: "/shared/topic", Types: []string{"demo.Shared"}},
	}

	out := RelativizeTopicNames("/my_node", topics)
	require.Len(t, out, 2)
	assert.Equal(t, "~/status", out[0].Name)
	assert.Equal(t, "/shared/topic", out[1].Name)

	// Input untouched.
	assert.Equal(t, "/my_node/status", topics[0].Name)
}

func TestRelativizeTopicNamesRootsNodeName(t *testing.T) {
	out := RelativizeTopicNames("my_node", []TopicInfo{{Name: "/my_node/status"}})
	require.Len(t, out, 1)
	assert.Equal(t, "~/status", out[0].Name)
}

func TestParameterTypeName(t *testing.T) {
	tests := []struct {
		code ParameterType
		want string
	}{
		{ParameterNotSet, "Any"},
		{ParameterBool, "Boolean"},
		{ParameterInteger, "Integer"},
		{ParameterDouble, "Double"},
		{ParameterString, "String"},
		{ParameterByteArray, "Array: Byte"},
		{ParameterBoolArray, "Array: Boolean"},
		{ParameterIntegerArray, "Array: Integer"},
		{ParameterDoubleArray, "Array: Double"},
		{ParameterStringArray, "Array: String"},
	}

	for _, tt := range tests {
		got, err := ParameterTypeName(tt.code)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParameterTypeNameUnknown(t *testing.T) {
	_, err := ParameterTypeName(ParameterType(42))
	assert.Error(t, err, "unknown codes fail, never default")
}
