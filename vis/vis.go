// Package vis renders a high-rank subgraph as a force-layout echarts page:
// the top ranked nodes, their out-edges to neighbors above a rank threshold,
// node size proportional to rank.
package vis

import (
	"io"
	"net/http"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/surfgraph/pagerank/edgelist"
	"github.com/surfgraph/pagerank/rank"
)

const (
	highlightColor = "#4169E1"
	neighborColor  = "#39B54A"
	sizeScale      = 500000
)

// SubgraphOptions controls which part of the ranked graph is plotted.
type SubgraphOptions struct {
	TopN               int     // number of highest-ranked nodes to seed from
	NeighborThreshold  float64 // minimum rank for a neighbor to be drawn
	HighlightThreshold float64 // rank above which a node is highlighted
}

// DefaultSubgraphOptions returns the plotting defaults: top 10 nodes,
// neighbor cutoff 0.0010, highlight cutoff 0.0015.
func DefaultSubgraphOptions() SubgraphOptions {
	return SubgraphOptions{
		TopN:               10,
		NeighborThreshold:  0.0010,
		HighlightThreshold: 0.0015,
	}
}

// Data is the echarts node and link series for one subgraph.
type Data struct {
	Nodes []opts.GraphNode
	Links []opts.GraphLink
}

// Subgraph selects the top-ranked nodes and the edges from them to
// neighbors ranking above the threshold. Nodes are emitted in sorted order
// so repeated renders of the same ranks are identical.
func Subgraph(edges []edgelist.Edge, ranks map[string]float64, o SubgraphOptions) Data {
	ordered := rank.Order(ranks)
	topN := o.TopN
	if topN > len(ordered) {
		topN = len(ordered)
	}

	top := make(map[string]bool, topN)
	for _, scored := range ordered[:topN] {
		top[scored.ID] = true
	}

	seen := make(map[string]bool)
	var links []opts.GraphLink
	for _, e := range edges {
		if !top[e.Source] || ranks[e.Target] <= o.NeighborThreshold {
			continue
		}
		seen[e.Source] = true
		seen[e.Target] = true
		links = append(links, opts.GraphLink{
			Source: e.Source,
			Target: e.Target,
			Value:  float32(e.Weight),
		})
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	nodes := make([]opts.GraphNode, 0, len(ids))
	for _, id := range ids {
		color := neighborColor
		if ranks[id] > o.HighlightThreshold {
			color = highlightColor
		}
		nodes = append(nodes, opts.GraphNode{
			Name:       id,
			Value:      float32(ranks[id]),
			SymbolSize: ranks[id] * sizeScale,
			ItemStyle: &opts.ItemStyle{
				Color: color,
			},
		})
	}

	return Data{Nodes: nodes, Links: links}
}

// Render writes the subgraph as a standalone HTML page.
func Render(w io.Writer, data Data, title string) error {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}))

	graph.AddSeries("graph", data.Nodes, data.Links).
		SetSeriesOptions(
			charts.WithGraphChartOpts(opts.GraphChart{
				Force:              &opts.GraphForce{Repulsion: 2000},
				Layout:             "force",
				Roam:               true,
				FocusNodeAdjacency: true,
			}),
			charts.WithLabelOpts(opts.Label{Show: true, Position: "right", Color: "black"}),
			charts.WithEmphasisOpts(opts.Emphasis{
				Label: &opts.Label{
					Formatter: "rank: {c}",
					Show:      true,
					Color:     "black",
				},
			}),
		)

	page := components.NewPage()
	page.AddCharts(graph)
	return page.Render(w)
}

// Serve blocks serving dir over HTTP so the rendered page can be opened in
// a browser.
func Serve(addr, dir string) error {
	return http.ListenAndServe(addr, http.FileServer(http.Dir(dir)))
}
