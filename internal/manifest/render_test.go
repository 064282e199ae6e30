package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// loadTestValues parses a YAML values document for render tests.
func loadTestValues(t *testing.T, input string) Values {
	t.Helper()
	var values Values
	require.NoError(t, yaml.Unmarshal([]byte(input), &values))
	return values
}

func TestRender_FullDocument(t *testing.T) {
	values := loadTestValues(t, `
name: airflow-api
gate:
  constraint: ">=3.0.0"
  version: "{{ .airflowVersion }}"
airflowVersion: 3.1.0
selector:
  tier: airflow
  component: api-server
commonLabels:
  tier: airflow
  heritage: helmsman
labels:
  tier: airflow
  component: api-server
annotations:
  config/checksum: "{{ .value.configHash }}"
ports:
  - name: http
    port: "{{ .value.httpPort }}"
  - name: grpc
    port: 9090
value:
  httpPort: 8080
  configHash: abc123
service:
  type: ClusterIP
  loadBalancerIP: ""
`)

	doc, err := Render(values)
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.Equal(t, APIVersionV1, doc.APIVersion)
	assert.Equal(t, KindService, doc.Kind)
	assert.Equal(t, "airflow-api", doc.Metadata.Name)

	// Component labels win over common labels on shared keys.
	assert.Equal(t, map[string]string{
		"tier":      "airflow",
		"heritage":  "helmsman",
		"component": "api-server",
	}, doc.Metadata.Labels)

	assert.Equal(t, map[string]string{
		"config/checksum": "abc123",
	}, doc.Metadata.Annotations)

	assert.Equal(t, map[string]string{
		"tier":      "airflow",
		"component": "api-server",
	}, doc.Spec.Selector)

	require.Len(t, doc.Spec.Ports, 2)
	assert.Equal(t, Record{
		{Name: "name", Value: "http"},
		{Name: "port", Value: 8080},
	}, doc.Spec.Ports[0])
	assert.Equal(t, Record{
		{Name: "name", Value: "grpc"},
		{Name: "port", Value: 9090},
	}, doc.Spec.Ports[1])

	assert.Equal(t, "ClusterIP", doc.Spec.Type)
	assert.Empty(t, doc.Spec.LoadBalancerIP)
	assert.Empty(t, doc.Spec.ClusterIP)
}

func TestRender_Gate(t *testing.T) {
	t.Run("satisfied gate emits document", func(t *testing.T) {
		values := loadTestValues(t, `
name: airflow-api
selector:
  tier: airflow
gate:
  constraint: ">=3.0.0"
  version: "3.1.0"
`)
		doc, err := Render(values)
		require.NoError(t, err)
		assert.NotNil(t, doc)
	})

	t.Run("unsatisfied gate omits document", func(t *testing.T) {
		values := loadTestValues(t, `
name: airflow-api
selector:
  tier: airflow
gate:
  constraint: ">=3.0.0"
  version: "2.9.9"
`)
		doc, err := Render(values)
		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("malformed gate fails closed", func(t *testing.T) {
		values := loadTestValues(t, `
name: airflow-api
selector:
  tier: airflow
gate:
  constraint: "at least three"
  version: "3.1.0"
`)
		doc, err := Render(values)
		require.NoError(t, err)
		assert.Nil(t, doc)
	})
}

func TestRender_RequiredFields(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		values := loadTestValues(t, `
selector:
  tier: airflow
`)
		_, err := Render(values)
		assert.ErrorIs(t, err, ErrMissingField)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("missing selector", func(t *testing.T) {
		values := loadTestValues(t, `
name: airflow-api
`)
		_, err := Render(values)
		assert.ErrorIs(t, err, ErrMissingField)
		assert.Contains(t, err.Error(), "selector")
	})

	t.Run("empty selector", func(t *testing.T) {
		values := Values{
			"name":     "airflow-api",
			"selector": map[string]any{},
		}
		_, err := Render(values)
		assert.ErrorIs(t, err, ErrMissingField)
	})
}

func TestRender_ConditionalPresence(t *testing.T) {
	values := loadTestValues(t, `
name: airflow-api
selector:
  tier: airflow
`)

	doc, err := Render(values)
	require.NoError(t, err)
	require.NotNil(t, doc)

	// Labels and annotations stay absent, never empty.
	assert.Nil(t, doc.Metadata.Labels)
	assert.Nil(t, doc.Metadata.Annotations)

	// Ports section is present even with no ports configured.
	require.NotNil(t, doc.Spec.Ports)
	assert.Empty(t, doc.Spec.Ports)

	out, err := RenderToYAML(doc)
	require.NoError(t, err)
	assert.Contains(t, out, "ports: []")
	assert.NotContains(t, out, "labels:")
	assert.NotContains(t, out, "annotations:")
	assert.NotContains(t, out, "clusterIP:")
	assert.NotContains(t, out, "type:")
}

func TestRender_EmptyOptionalScalarsOmitted(t *testing.T) {
	values := loadTestValues(t, `
name: airflow-api
selector:
  tier: airflow
service:
  type: ""
  clusterIP: ""
`)

	doc, err := Render(values)
	require.NoError(t, err)

	out, err := RenderToYAML(doc)
	require.NoError(t, err)
	assert.NotContains(t, out, "type:")
	assert.NotContains(t, out, "clusterIP:")
}

func TestRender_TemplatedOptionalScalar(t *testing.T) {
	values := loadTestValues(t, `
name: airflow-api
selector:
  tier: airflow
service:
  loadBalancerIP: "{{ .network.reservedIP }}"
network:
  reservedIP: 10.0.0.42
`)

	doc, err := Render(values)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.42", doc.Spec.LoadBalancerIP)
}

func TestRender_TemplateErrorsAbort(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name: "unresolved annotation reference",
			input: `
name: airflow-api
selector:
  tier: airflow
annotations:
  checksum: "{{ .value.missing }}"
`,
			wantErr: ErrUnresolvedReference,
		},
		{
			name: "self-referential port value",
			input: `
name: airflow-api
selector:
  tier: airflow
ports:
  - name: http
    port: "{{ .a }}"
a: "{{ .b }}"
b: "{{ .a }}"
`,
			wantErr: ErrMaxDepthExceeded,
		},
		{
			name: "malformed port template",
			input: `
name: airflow-api
selector:
  tier: airflow
ports:
  - name: http
    port: "{{ .value.httpPort"
`,
			wantErr: ErrTemplateSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := loadTestValues(t, tt.input)
			doc, err := Render(values)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, doc, "no partial document on failure")
		})
	}
}

func TestRender_LabelsFromSingleFragment(t *testing.T) {
	values := loadTestValues(t, `
name: airflow-api
selector:
  tier: airflow
labels:
  component: api-server
`)

	doc, err := Render(values)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"component": "api-server"}, doc.Metadata.Labels)
}
