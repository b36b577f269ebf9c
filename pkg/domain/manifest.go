package domain

// PortsList is the set of port keys a node type declares.
type PortsList []string

// Has reports whether key is declared.
func (p PortsList) Has(key string) bool {
	for _, k := range p {
		if k == key {
			return true
		}
	}
	return false
}

// Manifest describes a registered node type for the tree-construction
// layer: which ports it declares and under which ID it was registered.
// It is structural only; the core never consults it at tick time.
type Manifest struct {
	Type           NodeType  `json:"type" yaml:"type"`
	RegistrationID string    `json:"registration_id" yaml:"registration_id"`
	Ports          PortsList `json:"ports,omitempty" yaml:"ports,omitempty"`
}
