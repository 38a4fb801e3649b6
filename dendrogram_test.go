package bicluster

import (
	"image/color"
	"testing"
)

func TestNewDendrogram_HandTraced(t *testing.T) {
	// Threshold 3: the root (4) is neutral, merges at 1 and 2 share one color.
	palette := []color.Color{color.RGBA{R: 255, A: 255}, color.RGBA{G: 255, A: 255}}
	d := NewDendrogram(chainLinkage, 3, palette)

	wantLeaves := []int{3, 2, 0, 1}
	for i := range wantLeaves {
		if d.Leaves[i] != wantLeaves[i] {
			t.Fatalf("leaves = %v, want %v", d.Leaves, wantLeaves)
		}
	}
	if d.Clusters != 1 {
		t.Errorf("clusters = %d, want 1", d.Clusters)
	}
	if d.MaxDistance != 4 {
		t.Errorf("max distance = %v, want 4", d.MaxDistance)
	}

	// Post-order: node 4, node 5, root.
	want := []DendrogramLink{
		{Pos: [4]float64{25, 25, 35, 35}, Dist: [4]float64{0, 1, 1, 0}, Cluster: 0, Color: palette[0]},
		{Pos: [4]float64{15, 15, 30, 30}, Dist: [4]float64{0, 2, 2, 1}, Cluster: 0, Color: palette[0]},
		{Pos: [4]float64{5, 5, 22.5, 22.5}, Dist: [4]float64{0, 4, 4, 2}, Cluster: -1, Color: NeutralColor},
	}
	if len(d.Links) != len(want) {
		t.Fatalf("expected %d links, got %d", len(want), len(d.Links))
	}
	for i, w := range want {
		got := d.Links[i]
		if got.Pos != w.Pos || got.Dist != w.Dist {
			t.Errorf("link %d = %v/%v, want %v/%v", i, got.Pos, got.Dist, w.Pos, w.Dist)
		}
		if got.Cluster != w.Cluster || got.Color != w.Color {
			t.Errorf("link %d cluster/color = %d/%v, want %d/%v", i, got.Cluster, got.Color, w.Cluster, w.Color)
		}
	}
}

func TestNewDendrogram_ClustersCycleColors(t *testing.T) {
	// Three tight pairs joined far above them.
	z := Linkage{
		{0, 1, 1, 2},
		{2, 3, 1, 2},
		{4, 5, 1, 2},
		{6, 7, 9, 4},
		{8, 9, 10, 6},
	}
	palette := []color.Color{color.RGBA{R: 255, A: 255}, color.RGBA{G: 255, A: 255}}

	th, err := ColorThreshold(z, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := NewDendrogram(z, th, palette)

	if d.Clusters != 3 {
		t.Fatalf("clusters = %d, want 3", d.Clusters)
	}
	// Colors are assigned in leaf order and wrap around the palette.
	seen := map[int]color.Color{}
	for _, l := range d.Links {
		if l.Cluster >= 0 {
			seen[l.Cluster] = l.Color
		}
	}
	if seen[0] != palette[0] || seen[1] != palette[1] || seen[2] != palette[0] {
		t.Errorf("cluster colors = %v", seen)
	}
}

func TestNewDendrogram_LeavesMatchLeavesList(t *testing.T) {
	d := NewDendrogram(chainLinkage, 0, nil)
	ll := LeavesList(chainLinkage)
	for i := range ll {
		if d.Leaves[i] != ll[i] {
			t.Fatalf("dendrogram leaves %v != LeavesList %v", d.Leaves, ll)
		}
	}
	// Threshold 0 colors nothing.
	if d.Clusters != 0 {
		t.Errorf("clusters = %d, want 0", d.Clusters)
	}
}

func TestLeafPosition(t *testing.T) {
	for i, want := range []float64{5, 15, 25} {
		if got := LeafPosition(i); got != want {
			t.Errorf("LeafPosition(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestDendrogramPlot_Extents(t *testing.T) {
	d := NewDendrogram(chainLinkage, 3, nil)

	top, err := d.Plot(OrientTop, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if top.X.Min != 0 || top.X.Max != 40 {
		t.Errorf("top X = [%v, %v], want [0, 40]", top.X.Min, top.X.Max)
	}
	if top.Y.Min != 0 || !almostEqual(top.Y.Max, 4.2, 1e-12) {
		t.Errorf("top Y = [%v, %v], want [0, 4.2]", top.Y.Min, top.Y.Max)
	}

	left, err := d.Plot(OrientLeft, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if left.Y.Min != 0 || left.Y.Max != 40 {
		t.Errorf("left Y = [%v, %v], want [0, 40]", left.Y.Min, left.Y.Max)
	}
	if !almostEqual(left.X.Min, -4.2, 1e-12) || left.X.Max != 0 {
		t.Errorf("left X = [%v, %v], want [-4.2, 0]", left.X.Min, left.X.Max)
	}
}
