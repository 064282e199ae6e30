package manifest

// Document is a rendered Service manifest. Optional fields carry omitempty
// so "absent" never serializes as an empty value; Ports deliberately does
// not, because an empty ports list is a valid state distinct from a missing
// section.
type Document struct {
	// APIVersion is the manifest schema version (e.g., "v1").
	APIVersion string `yaml:"apiVersion"`

	// Kind identifies the document type (e.g., "Service").
	Kind string `yaml:"kind"`

	// Metadata holds identity, labels, and annotations.
	Metadata Metadata `yaml:"metadata"`

	// Spec holds the service selector, ports, and optional scalars.
	Spec ServiceSpec `yaml:"spec"`
}

// Metadata identifies a rendered document.
type Metadata struct {
	// Name is the document name, looked up directly from the context.
	Name string `yaml:"name"`

	// Labels is the merged label fragments; omitted when no fragment
	// contributed anything.
	Labels map[string]string `yaml:"labels,omitempty"`

	// Annotations holds template-expanded annotation values; omitted
	// when the context supplies none.
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// ServiceSpec is the spec section of a rendered Service.
type ServiceSpec struct {
	// Type is the service type (e.g., "ClusterIP"); omitted when empty.
	Type string `yaml:"type,omitempty"`

	// Selector is the pod selector, looked up directly from the context.
	Selector map[string]string `yaml:"selector"`

	// Ports is the projected port list; always present, possibly empty.
	Ports []Record `yaml:"ports"`

	// ClusterIP is emitted only when the source value is non-empty.
	ClusterIP string `yaml:"clusterIP,omitempty"`

	// LoadBalancerIP is emitted only when the source value is non-empty.
	LoadBalancerIP string `yaml:"loadBalancerIP,omitempty"`

	// ExternalTrafficPolicy is emitted only when the source value is non-empty.
	ExternalTrafficPolicy string `yaml:"externalTrafficPolicy,omitempty"`
}
