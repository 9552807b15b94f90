// Package ifc defines the resolved in-memory model for ROS 2 interface
// definitions: messages, services, actions, and their field types.
// Entities are constructed in a single pass over one specification file and
// are immutable afterwards.
package ifc

// Message is a single flat named field set, built from one .msg file.
type Message struct {
	Name   string    `json:"name" yaml:"name"`
	Fields *FieldSet `json:"fields" yaml:"fields"`
}

// Service is a two-section (request/response) specification, built from
// one .srv file.
type Service struct {
	Name     string    `json:"name" yaml:"name"`
	Request  *FieldSet `json:"request" yaml:"request"`
	Response *FieldSet `json:"response" yaml:"response"`
}

// Action is a three-section (goal/result/feedback) specification, built
// from one .action file.
type Action struct {
	Name     string    `json:"name" yaml:"name"`
	Goal     *FieldSet `json:"goal" yaml:"goal"`
	Result   *FieldSet `json:"result" yaml:"result"`
	Feedback *FieldSet `json:"feedback" yaml:"feedback"`
}
