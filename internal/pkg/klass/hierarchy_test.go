package klass_test

import (
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelekornrud/BouvetRadar/internal/domain"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/constants"
	"github.com/michaelekornrud/BouvetRadar/internal/pkg/klass"
)

var geoDescriptor = klass.Descriptor{
	MaxLevel: domain.Level3,
	ChildKeys: map[domain.Level]string{
		domain.Level2: "counties",
		domain.Level3: "municipalities",
	},
	CleanName: func(level domain.Level, name string) string {
		if level != domain.Level2 {
			return name
		}
		return strings.TrimSpace(strings.SplitN(name, "/", 2)[0])
	},
}

func TestBuildToLevel(t *testing.T) {
	t.Parallel()

	ix := mustIndex(t, nutsFixture)

	t.Run("level 1 returns the flat top level with no children", func(t *testing.T) {
		t.Parallel()

		nodes, err := klass.BuildToLevel(ix, geoDescriptor, domain.Level1)
		require.NoError(t, err)
		require.Len(t, nodes, 2)
		assert.Equal(t, "NO08", nodes[0].Code)
		assert.Nil(t, nodes[0].Children)

		raw, err := sonic.Marshal(nodes[0])
		require.NoError(t, err)
		assert.JSONEq(t, `{"code":"NO08","name":"Oslo og Viken"}`, string(raw))
	})

	t.Run("level 2 nests counties and cleans dual-language names", func(t *testing.T) {
		t.Parallel()

		nodes, err := klass.BuildToLevel(ix, geoDescriptor, domain.Level2)
		require.NoError(t, err)
		require.Len(t, nodes, 2)

		counties := nodes[0].Children
		require.Len(t, counties, 2)
		assert.Equal(t, "Oslo", counties[0].Name)
		assert.Equal(t, "Viken", counties[1].Name)
		assert.Nil(t, counties[0].Children)

		raw, err := sonic.Marshal(nodes[0])
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"code": "NO08",
			"name": "Oslo og Viken",
			"counties": [
				{"code": "NO081", "name": "Oslo"},
				{"code": "NO082", "name": "Viken"}
			]
		}`, string(raw))
	})

	t.Run("level 3 nests municipalities under counties", func(t *testing.T) {
		t.Parallel()

		nodes, err := klass.BuildToLevel(ix, geoDescriptor, domain.Level3)
		require.NoError(t, err)

		viken := nodes[0].Children[1]
		require.Len(t, viken.Children, 2)
		assert.Equal(t, "Drammen", viken.Children[0].Name)
		assert.Equal(t, "Halden", viken.Children[1].Name)

		// Childless counties still serialize an empty nesting key.
		oslo := nodes[0].Children[0]
		require.Len(t, oslo.Children, 1)
		raw, err := sonic.Marshal(nodes[1])
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"municipalities":[]`)
	})

	t.Run("levels beyond the domain maximum are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := klass.BuildToLevel(ix, geoDescriptor, domain.Level4)

		var ce *constants.CodedError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, constants.CodeInvalidInput, ce.ErrorCode())

		_, err = klass.BuildToLevel(ix, geoDescriptor, domain.Level(0))
		require.ErrorAs(t, err, &ce)
	})

	t.Run("flattening the tree reproduces ByLevel per level", func(t *testing.T) {
		t.Parallel()

		nodes, err := klass.BuildToLevel(ix, geoDescriptor, domain.Level3)
		require.NoError(t, err)

		flattened := map[domain.Level][]string{}
		var walk func(ns []*klass.Node, level domain.Level)
		walk = func(ns []*klass.Node, level domain.Level) {
			for _, n := range ns {
				flattened[level] = append(flattened[level], n.Code)
				walk(n.Children, level+1)
			}
		}
		walk(nodes, domain.Level1)

		for _, level := range []domain.Level{domain.Level1, domain.Level2, domain.Level3} {
			expected := make([]string, 0)
			for _, e := range ix.ByLevel(level) {
				expected = append(expected, e.Code)
			}
			assert.ElementsMatch(t, expected, flattened[level], "level %d", level)
		}
	})
}

func TestBuildToLevelSTYRK(t *testing.T) {
	t.Parallel()

	const styrkFixture = `code;parentCode;level;name
1;;1;Ledere
2;;1;Akademiske yrker
11;1;2;Politikere og toppledere
111;11;3;Politikere
1111;111;4;Stortingsrepresentanter
1112;111;4;Ordførere
21;2;2;Realister, sivilingeniører mv.
211;21;3;Fysikere og kjemikere
2111;211;4;Fysikere og astronomer
`

	descriptor := klass.Descriptor{
		MaxLevel: domain.Level4,
		ChildKeys: map[domain.Level]string{
			domain.Level2: "subgroups",
			domain.Level3: "roles",
			domain.Level4: "titles",
		},
	}

	ix := mustIndex(t, styrkFixture)

	nodes, err := klass.BuildToLevel(ix, descriptor, domain.Level4)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	raw, err := sonic.Marshal(nodes[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"code": "1",
		"name": "Ledere",
		"subgroups": [{
			"code": "11",
			"name": "Politikere og toppledere",
			"roles": [{
				"code": "111",
				"name": "Politikere",
				"titles": [
					{"code": "1111", "name": "Stortingsrepresentanter"},
					{"code": "1112", "name": "Ordførere"}
				]
			}]
		}]
	}`, string(raw))
}
