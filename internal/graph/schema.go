package graph

// PortType identifies the wire type of a node input or output slot.
type PortType string

const (
	TypeString PortType = "string"
	TypeBool   PortType = "bool"
	TypeInt    PortType = "int"
	TypeEnum   PortType = "enum"
	TypeImage  PortType = "image"
	TypeAudio  PortType = "audio"
	TypeVideo  PortType = "video"
)

// PortSpec is the structured description of one input slot, mirroring the
// widget metadata a graph editor needs to render it.
type PortSpec struct {
	Type      PortType `json:"type"`
	Required  bool     `json:"required"`
	Default   any      `json:"default,omitempty"`
	Secret    bool     `json:"secret,omitempty"`
	Multiline bool     `json:"multiline,omitempty"`
	Min       *int     `json:"min,omitempty"`
	Max       *int     `json:"max,omitempty"`
	Options   []string `json:"options,omitempty"`
	Tooltip   string   `json:"tooltip,omitempty"`
}

// OutputSpec names one output slot and its type.
type OutputSpec struct {
	Name string   `json:"name"`
	Type PortType `json:"type"`
}

// Descriptor is the full capability record a node publishes to the host.
type Descriptor struct {
	ID          string              `json:"id"`
	DisplayName string              `json:"display_name"`
	Category    string              `json:"category"`
	Inputs      map[string]PortSpec `json:"inputs"`
	Outputs     []OutputSpec        `json:"outputs"`
}

// IntPtr is a convenience for PortSpec bounds literals.
func IntPtr(v int) *int { return &v }
