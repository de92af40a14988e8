package cluster_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/proximity/cluster"
	"github.com/katalvlaran/proximity/pointset"
)

type scenario struct {
	Name           string     `yaml:"name"`
	Connections    int        `yaml:"connections"`
	Top            int        `yaml:"top"`
	TopProduct     uint64     `yaml:"top_product"`
	Bottleneck     [2]int     `yaml:"bottleneck"`
	BottleneckStep int        `yaml:"bottleneck_step"`
	XProduct       uint64     `yaml:"x_product"`
	Points         [][3]int64 `yaml:"points"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var doc struct {
		Scenarios []scenario `yaml:"scenarios"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	require.NotEmpty(t, doc.Scenarios)

	return doc.Scenarios
}

// TestScenarios runs every fixture through both query classes and both
// construction paths (complete graph and bounded selection).
func TestScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		t.Run(sc.Name, func(t *testing.T) {
			ps := pointset.FromTriples(sc.Points)
			a, err := cluster.New(ps, cluster.WithTop(sc.Top))
			require.NoError(t, err)

			got, err := a.TopProduct(sc.Connections)
			require.NoError(t, err)
			assert.Equal(t, sc.TopProduct, got)

			bounded, err := cluster.TopProduct(ps, sc.Connections, cluster.WithTop(sc.Top))
			require.NoError(t, err)
			assert.Equal(t, sc.TopProduct, bounded)

			b, err := a.Bottleneck()
			require.NoError(t, err)
			assert.Equal(t, sc.Bottleneck, [2]int{b.Edge.From, b.Edge.To})
			assert.Equal(t, sc.BottleneckStep, b.Step)
			assert.Equal(t, ps.Len()-1, b.Merges)

			v, err := a.BottleneckValue(cluster.ProductX)
			require.NoError(t, err)
			assert.Equal(t, sc.XProduct, v)
		})
	}
}
