package graphfile

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/katalvlaran/shortpath/graphstore"
	"github.com/katalvlaran/shortpath/internal/ctxlog"
)

var (
	// ErrUnknownNode indicates a reference to a label no node block declares.
	ErrUnknownNode = errors.New("graphfile: unknown node")

	// ErrDuplicateNode indicates two node blocks share a label.
	ErrDuplicateNode = errors.New("graphfile: duplicate node")

	// ErrInvalidPayload indicates a payload that cannot be converted to a string.
	ErrInvalidPayload = errors.New("graphfile: invalid payload")
)

// DefaultWeight is the weight of an edge block without a weight attribute.
const DefaultWeight = 1.0

//go:embed letters.hcl
var lettersHCL []byte

// LettersFile is the name under which the built-in graph is parsed.
const LettersFile = "letters.hcl"

// fileRoot mirrors the top-level blocks of a graph file.
type fileRoot struct {
	Nodes []*nodeBlock `hcl:"node,block"`
	Edges []*edgeBlock `hcl:"edge,block"`
	Route *routeBlock  `hcl:"route,block"`
}

type nodeBlock struct {
	Label   string     `hcl:"label,label"`
	Payload *cty.Value `hcl:"payload,optional"`
}

type edgeBlock struct {
	From   string   `hcl:"from,label"`
	To     string   `hcl:"to,label"`
	Weight *float64 `hcl:"weight,optional"`
}

type routeBlock struct {
	From string `hcl:"from"`
	To   string `hcl:"to"`
}

// Route is the default (from, to) pair declared in a file.
type Route struct {
	From string
	To   string
}

// Graph is a loaded file: the populated store plus the label index.
type Graph struct {
	Store *graphstore.Store[string]
	// Route is nil when the file declares no route block.
	Route *Route

	ids    map[string]int
	labels []string
}

// Lookup returns the node id declared for label.
func (g *Graph) Lookup(label string) (int, error) {
	id, ok := g.ids[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, label)
	}
	return id, nil
}

// Label returns the label of the node with the given id.
func (g *Graph) Label(id int) string {
	if id < 0 || id >= len(g.labels) {
		return ""
	}
	return g.labels[id]
}

// Load parses and builds the graph file at path.
func Load(ctx context.Context, path string) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("graphfile: loading", "path", path)

	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: failed to parse %s: %w", path, diags)
	}

	return decode(ctx, path, file)
}

// Parse builds a graph from HCL source; filename is used in diagnostics.
func Parse(ctx context.Context, src []byte, filename string) (*Graph, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: failed to parse %s: %w", filename, diags)
	}

	return decode(ctx, filename, file)
}

// Letters returns the built-in eight-node graph a..h with route a→f.
func Letters(ctx context.Context) (*Graph, error) {
	return Parse(ctx, lettersHCL, LettersFile)
}

func decode(ctx context.Context, name string, file *hcl.File) (*Graph, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("graphfile: failed to decode %s: %w", name, diags)
	}

	g := &Graph{
		Store:  graphstore.NewStore[string](graphstore.WithCapacity(len(root.Nodes))),
		ids:    make(map[string]int, len(root.Nodes)),
		labels: make([]string, 0, len(root.Nodes)),
	}

	for _, n := range root.Nodes {
		if _, dup := g.ids[n.Label]; dup {
			return nil, fmt.Errorf("%s: %w: %q", name, ErrDuplicateNode, n.Label)
		}
		payload, err := payloadString(n)
		if err != nil {
			return nil, fmt.Errorf("%s: node %q: %w", name, n.Label, err)
		}
		g.ids[n.Label] = g.Store.AddNode(payload)
		g.labels = append(g.labels, n.Label)
	}

	for _, e := range root.Edges {
		from, err := g.Lookup(e.From)
		if err != nil {
			return nil, fmt.Errorf("%s: edge %q→%q: %w", name, e.From, e.To, err)
		}
		to, err := g.Lookup(e.To)
		if err != nil {
			return nil, fmt.Errorf("%s: edge %q→%q: %w", name, e.From, e.To, err)
		}
		w := DefaultWeight
		if e.Weight != nil {
			w = *e.Weight
		}
		if err := g.Store.AddEdge(from, to, w); err != nil {
			return nil, fmt.Errorf("%s: edge %q→%q: %w", name, e.From, e.To, err)
		}
	}

	if root.Route != nil {
		for _, label := range []string{root.Route.From, root.Route.To} {
			if _, err := g.Lookup(label); err != nil {
				return nil, fmt.Errorf("%s: route: %w", name, err)
			}
		}
		g.Route = &Route{From: root.Route.From, To: root.Route.To}
	}

	ctxlog.FromContext(ctx).Debug("graphfile: loaded",
		"file", name, "nodes", g.Store.NodeCount(), "edges", g.Store.EdgeCount(), "route", g.Route != nil)

	return g, nil
}

// payloadString converts the optional payload attribute to a string,
// defaulting to the node label.
func payloadString(n *nodeBlock) (string, error) {
	if n.Payload == nil || n.Payload.IsNull() {
		return n.Label, nil
	}
	if !n.Payload.IsWhollyKnown() {
		return "", fmt.Errorf("%w: value is not known", ErrInvalidPayload)
	}
	v, err := convert.Convert(*n.Payload, cty.String)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidPayload, err)
	}
	return v.AsString(), nil
}
