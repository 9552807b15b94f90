package ifc

// Package is the aggregated model for one ROS package: all messages,
// services, and actions found under its share directory, in enumeration
// order. Immutable after construction and safe for concurrent reads.
type Package struct {
	Name     string     `json:"name" yaml:"name"`
	Messages []*Message `json:"messages" yaml:"messages"`
	Services []*Service `json:"services" yaml:"services"`
	Actions  []*Action  `json:"actions" yaml:"actions"`
}

// FindMessage returns the message with the given name, or nil.
func (p *Package) FindMessage(name string) *Message {
	for _, m := range p.Messages {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// FindService returns the service with the given name, or nil.
func (p *Package) FindService(name string) *Service {
	for _, s := range p.Services {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// FindAction returns the action with the given name, or nil.
func (p *Package) FindAction(name string) *Action {
	for _, a := range p.Actions {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// MessageCount returns the number of messages.
func (p *Package) MessageCount() int { return len(p.Messages) }

// ServiceCount returns the number of services.
func (p *Package) ServiceCount() int { return len(p.Services) }

// ActionCount returns the number of actions.
func (p *Package) ActionCount() int { return len(p.Actions) }

// Interfaces returns the names of all interfaces in the package, messages
// first, then services, then actions, each group in enumeration order.
func (p *Package) Interfaces() []string {
	names := make([]string, 0, len(p.Messages)+len(p.Services)+len(p.Actions))
	for _, m := range p.Messages {
		names = append(names, m.Name)
	}
	for _, s := range p.Services {
		names = append(names, s.Name)
	}
	for _, a := range p.Actions {
		names = append(names, a.Name)
	}
	return names
}
