package graphfile_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/graphstore"
	"github.com/katalvlaran/shortpath/internal/graphfile"
)

func TestLetters(t *testing.T) {
	g, err := graphfile.Letters(context.Background())
	require.NoError(t, err)
	require.Equal(t, 8, g.Store.NodeCount())
	require.Equal(t, 6, g.Store.EdgeCount())
	require.Equal(t, &graphfile.Route{From: "a", To: "f"}, g.Route)

	f, err := g.Lookup("f")
	require.NoError(t, err)
	require.Equal(t, 5, f)
	require.Equal(t, "f", g.Label(5))

	e, err := g.Store.Edge(1, 2)
	require.NoError(t, err)
	require.Equal(t, 16.0, e.Weight)
}

func TestLoad(t *testing.T) {
	g, err := graphfile.Load(context.Background(), "testdata/cities.hcl")
	require.NoError(t, err)
	require.Nil(t, g.Route)

	want := []graphstore.Node[string]{
		{ID: 0, Payload: "Kyiv"},
		{ID: 1, Payload: "Lviv"},
		{ID: 2, Payload: "3"},
		{ID: 3, Payload: "dnipro"},
	}
	if diff := cmp.Diff(want, g.Store.Nodes()); diff != "" {
		t.Fatalf("nodes mismatch (-want +got):\n%s", diff)
	}

	e, err := g.Store.Edge(0, 3)
	require.NoError(t, err)
	require.Equal(t, graphfile.DefaultWeight, e.Weight)

	_, err = g.Lookup("paris")
	require.ErrorIs(t, err, graphfile.ErrUnknownNode)
	require.Empty(t, g.Label(99))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		path    string
		wantIs  error
		wantMsg string
	}{
		{path: "testdata/unknown.hcl", wantIs: graphfile.ErrUnknownNode, wantMsg: `"zz"`},
		{path: "testdata/duplicate.hcl", wantIs: graphfile.ErrDuplicateNode},
		{path: "testdata/broken.hcl", wantMsg: "failed to parse"},
		{path: "testdata/missing.hcl", wantMsg: "failed to parse"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			_, err := graphfile.Load(context.Background(), tc.path)
			require.Error(t, err)
			if tc.wantIs != nil {
				require.ErrorIs(t, err, tc.wantIs)
			}
			require.Contains(t, err.Error(), tc.path)
			if tc.wantMsg != "" {
				require.Contains(t, err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"negative weight", "node \"a\" {}\nedge \"a\" \"a\" {\n  weight = -1\n}\n", graphstore.ErrBadWeight},
		{"list payload", "node \"a\" {\n  payload = [1, 2]\n}\n", graphfile.ErrInvalidPayload},
		{"unknown route node", "node \"a\" {}\nroute {\n  from = \"a\"\n  to   = \"b\"\n}\n", graphfile.ErrUnknownNode},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphfile.Parse(context.Background(), []byte(tc.src), "inline.hcl")
			require.ErrorIs(t, err, tc.want)
			require.Contains(t, err.Error(), "inline.hcl")
		})
	}
}

func TestParse_UnsupportedAttribute(t *testing.T) {
	_, err := graphfile.Parse(context.Background(), []byte("node \"a\" {\n  colour = \"red\"\n}\n"), "inline.hcl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode")
}
