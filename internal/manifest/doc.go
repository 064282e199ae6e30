// Package manifest renders Kubernetes-style Service manifests from a
// layered values tree. The rendering pipeline includes:
//
//   - Version gating (semver constraints decide whether a document is emitted)
//   - Deep merging of label fragments with later-wins precedence
//   - Recursive template expansion ({{ ... }} values that resolve to further
//     templates are expanded up to a fixed depth)
//   - Port projection (ordered records whose field values may be templates)
//
// # Values Structure
//
// A values file supplies one flat context for a single document:
//
//	name: airflow-api
//	selector:
//	  tier: airflow
//	  component: api-server
//	commonLabels:
//	  tier: airflow
//	labels:
//	  component: api-server
//	ports:
//	  - name: http
//	    port: "{{ .value.httpPort }}"
//	value:
//	  httpPort: 8080
//
// # Gates
//
// An optional gate omits the whole document when its version constraint is
// not satisfied. Malformed gates close rather than fail:
//
//	gate:
//	  constraint: ">=3.0.0"
//	  version: "{{ .airflowVersion }}"
package manifest

// API version and kind for rendered documents.
const (
	// APIVersionV1 is the apiVersion emitted on rendered documents.
	APIVersionV1 = "v1"

	// KindService identifies the rendered document kind.
	KindService = "Service"
)
