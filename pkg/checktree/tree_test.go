// ABOUTME: Tests for the reference host Tree: aggregation, cascade reducers, rendering
// ABOUTME: Drives nodes through Tree.Node so intents flow through the real handlers

package checktree

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func sampleNodes() []Descriptor {
	return []Descriptor{
		{Value: "docs", Label: "Documents", Children: []Descriptor{
			{Value: "a", Label: "Alpha"},
			{Value: "b", Label: "Beta"},
			{Value: "sub", Label: "Subfolder", Children: []Descriptor{
				{Value: "c", Label: "Charlie"},
			}},
			{Value: "empty", Label: "Empty", Children: []Descriptor{}},
		}},
		{Value: "music", Label: "Music"},
	}
}

func newSampleTree(t *testing.T, mutate func(*TreeOptions)) *Tree {
	t.Helper()
	opts := DefaultTreeOptions("t")
	if mutate != nil {
		mutate(&opts)
	}
	tree, err := NewTree(sampleNodes(), opts)
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	return tree
}

func mustState(t *testing.T, tree *Tree, value string) TriState {
	t.Helper()
	s, err := tree.State(value)
	if err != nil {
		t.Fatalf("State(%q): %v", value, err)
	}
	return s
}

func click(t *testing.T, tree *Tree, value string) {
	t.Helper()
	n, err := tree.Node(value)
	if err != nil {
		t.Fatalf("Node(%q): %v", value, err)
	}
	n.ToggleCheck()
}

func TestNewTree_Rejects(t *testing.T) {
	t.Parallel()

	if _, err := NewTree(sampleNodes(), TreeOptions{}); !errors.Is(err, ErrMissingTreeID) {
		t.Errorf("err = %v; want ErrMissingTreeID", err)
	}
	bad := []Descriptor{{Value: "x", Label: "X"}, {Value: "x", Label: "Y"}}
	if _, err := NewTree(bad, DefaultTreeOptions("t")); !errors.Is(err, ErrDuplicateValue) {
		t.Errorf("err = %v; want ErrDuplicateValue", err)
	}
}

func TestTree_Aggregation(t *testing.T) {
	t.Parallel()

	tree := newSampleTree(t, nil)
	if got := mustState(t, tree, "docs"); got != Unchecked {
		t.Fatalf("initial docs = %v", got)
	}

	click(t, tree, "a")
	if got := mustState(t, tree, "docs"); got != Partial {
		t.Errorf("docs after one leaf = %v; want partial", got)
	}

	if err := tree.SetChecked([]string{"a", "b", "c", "empty"}); err != nil {
		t.Fatal(err)
	}
	if got := mustState(t, tree, "docs"); got != Checked {
		t.Errorf("docs with every child checked = %v; want checked", got)
	}
	if got := mustState(t, tree, "sub"); got != Checked {
		t.Errorf("sub = %v; want checked", got)
	}
}

func TestTree_PartialClickFollowsPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		optimistic bool
		want       []string
	}{
		{true, []string{"a", "b", "c", "empty"}},
		{false, []string{}},
	}
	for _, tt := range tests {
		tree := newSampleTree(t, func(o *TreeOptions) { o.OptimisticToggle = tt.optimistic })
		click(t, tree, "a")
		click(t, tree, "docs")
		if got := tree.Checked(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("optimistic=%v: Checked() = %v; want %v", tt.optimistic, got, tt.want)
		}
	}
}

func TestTree_CheckedClickClears(t *testing.T) {
	t.Parallel()

	tree := newSampleTree(t, nil)
	click(t, tree, "sub")
	if got := tree.Checked(); !reflect.DeepEqual(got, []string{"c"}) {
		t.Fatalf("Checked() = %v; want [c]", got)
	}
	click(t, tree, "sub")
	if got := tree.Checked(); len(got) != 0 {
		t.Errorf("Checked() after second click = %v; want empty", got)
	}
}

func TestTree_CheckModelAll(t *testing.T) {
	t.Parallel()

	tree := newSampleTree(t, func(o *TreeOptions) { o.CheckModel = CheckAll })
	click(t, tree, "docs")
	want := []string{"docs", "a", "b", "sub", "c", "empty"}
	if got := tree.Checked(); !reflect.DeepEqual(got, want) {
		t.Errorf("Checked() = %v; want %v", got, want)
	}
}

func TestTree_NoCascade(t *testing.T) {
	t.Parallel()

	tree := newSampleTree(t, func(o *TreeOptions) { o.NoCascade = true })
	click(t, tree, "docs")
	if got := tree.Checked(); !reflect.DeepEqual(got, []string{"docs"}) {
		t.Errorf("Checked() = %v; want [docs]", got)
	}
	if got := mustState(t, tree, "a"); got != Unchecked {
		t.Errorf("a = %v; want unchecked without cascade", got)
	}
}

func TestTree_SingleValueOnly(t *testing.T) {
	t.Parallel()

	tree := newSampleTree(t, func(o *TreeOptions) { o.SingleValueOnly = true })
	click(t, tree, "a")
	click(t, tree, "music")
	if got := tree.Checked(); !reflect.DeepEqual(got, []string{"music"}) {
		t.Errorf("Checked() = %v; want [music]", got)
	}
	p, _ := tree.PropsFor("music")
	if Select(p).CheckboxStyle != StyleRadio {
		t.Error("single value trees render radio glyphs")
	}

	click(t, tree, "sub")
	if got := tree.Checked(); !reflect.DeepEqual(got, []string{"sub"}) {
		t.Errorf("Checked() after folder click = %v; want [sub]", got)
	}
	if got := mustState(t, tree, "sub"); got != Checked {
		t.Errorf("sub = %v; want checked", got)
	}
	if got := mustState(t, tree, "c"); got != Unchecked {
		t.Errorf("c = %v; want unchecked, folder clicks do not cascade", got)
	}
	if got := mustState(t, tree, "docs"); got != Unchecked {
		t.Errorf("docs = %v; want unchecked", got)
	}
}

func TestTree_DisabledDescendantsKeepState(t *testing.T) {
	t.Parallel()

	nodes := sampleNodes()
	nodes[0].Children[1].Disabled = true // b
	tree, err := NewTree(nodes, DefaultTreeOptions("t"))
	if err != nil {
		t.Fatal(err)
	}
	click(t, tree, "docs")
	if got := mustState(t, tree, "b"); got != Unchecked {
		t.Errorf("disabled b = %v; want unchecked", got)
	}
	if got := mustState(t, tree, "docs"); got != Partial {
		t.Errorf("docs = %v; want partial", got)
	}

	n, _ := tree.Node("b")
	if n.ToggleCheck() {
		t.Error("disabled node must not emit")
	}
}

func TestTree_PartialFolderWithDisabledLeafToggles(t *testing.T) {
	t.Parallel()

	for _, optimistic := range []bool{true, false} {
		nodes := []Descriptor{{Value: "f", Label: "F", Children: []Descriptor{
			{Value: "x", Label: "X", Disabled: true},
			{Value: "y", Label: "Y"},
		}}}
		opts := DefaultTreeOptions("t")
		opts.OptimisticToggle = optimistic
		tree, err := NewTree(nodes, opts)
		if err != nil {
			t.Fatal(err)
		}

		want := []struct {
			state   TriState
			checked []string
		}{
			{Partial, []string{"y"}},
			{Unchecked, []string{}},
			{Partial, []string{"y"}},
		}
		for i, w := range want {
			click(t, tree, "f")
			if got := mustState(t, tree, "f"); got != w.state {
				t.Errorf("optimistic=%v click %d: f = %v; want %v", optimistic, i+1, got, w.state)
			}
			if got := tree.Checked(); !reflect.DeepEqual(got, w.checked) {
				t.Errorf("optimistic=%v click %d: Checked() = %v; want %v", optimistic, i+1, got, w.checked)
			}
		}
	}
}

func TestTree_DisabledCascadesToChildren(t *testing.T) {
	t.Parallel()

	nodes := sampleNodes()
	nodes[0].Children[2].Disabled = true // sub
	tree, err := NewTree(nodes, DefaultTreeOptions("t"))
	if err != nil {
		t.Fatal(err)
	}
	p, _ := tree.PropsFor("c")
	if !p.Disabled {
		t.Error("child of a disabled folder is disabled when cascading")
	}
}

func TestTree_ExpandAndVisible(t *testing.T) {
	t.Parallel()

	tree := newSampleTree(t, nil)
	if got := len(tree.Visible()); got != 2 {
		t.Fatalf("collapsed tree shows %d rows; want 2", got)
	}

	n, _ := tree.Node("docs")
	if !n.ToggleExpand() {
		t.Fatal("ToggleExpand() did not fire")
	}
	rows := tree.Visible()
	var values []string
	for _, r := range rows {
		values = append(values, r.Props.Value)
	}
	want := []string{"docs", "a", "b", "sub", "empty", "music"}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("visible = %v; want %v", values, want)
	}
	if rows[1].Depth != 1 {
		t.Errorf("depth of a = %d; want 1", rows[1].Depth)
	}
	if got := tree.Expanded(); !reflect.DeepEqual(got, []string{"docs"}) {
		t.Errorf("Expanded() = %v", got)
	}

	tree.ExpandAll()
	if got := len(tree.Visible()); got != 7 {
		t.Errorf("fully expanded rows = %d; want 7", got)
	}
	tree.CollapseAll()
	if got := tree.Expanded(); len(got) != 0 {
		t.Errorf("Expanded() after CollapseAll = %v", got)
	}
}

func TestTree_SetStateErrors(t *testing.T) {
	t.Parallel()

	tree := newSampleTree(t, nil)
	if err := tree.SetChecked([]string{"nope"}); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("SetChecked err = %v; want ErrUnknownValue", err)
	}
	if err := tree.SetExpanded([]string{"nope"}); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("SetExpanded err = %v; want ErrUnknownValue", err)
	}
	if err := tree.SetExpanded([]string{"music"}); err == nil {
		t.Error("expanding a leaf must fail")
	}
	if _, err := tree.PropsFor("nope"); !errors.Is(err, ErrUnknownValue) {
		t.Errorf("PropsFor err = %v; want ErrUnknownValue", err)
	}
}

func TestTree_UnknownIntentIgnored(t *testing.T) {
	t.Parallel()

	tree := newSampleTree(t, nil)
	tree.HandleCheck(CheckIntent{Value: "ghost", Checked: true})
	tree.HandleExpand(ExpandIntent{Value: "ghost", Expanded: true})
	if len(tree.Checked()) != 0 || len(tree.Expanded()) != 0 {
		t.Error("unknown intents must not change state")
	}
}

func TestTree_OnChange(t *testing.T) {
	t.Parallel()

	tree := newSampleTree(t, nil)
	var got [][]string
	tree.OnChange(func(checked []string) { got = append(got, checked) })

	click(t, tree, "sub")
	if err := tree.SetChecked(nil); err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"c"}, {}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("notifications = %v; want %v", got, want)
	}
}

func TestTree_FolderSelectorOption(t *testing.T) {
	t.Parallel()

	tree := newSampleTree(t, func(o *TreeOptions) { o.OnlyLeafCheckboxes = true })
	p, _ := tree.PropsFor("docs")
	if Select(p).ShowCheckbox {
		t.Error("folders lose their checkbox with OnlyLeafCheckboxes")
	}
	p, _ = tree.PropsFor("a")
	if !Select(p).ShowCheckbox {
		t.Error("leaves keep their checkbox")
	}
}

func TestTree_NodeShowCheckbox(t *testing.T) {
	t.Parallel()

	on, off := true, false
	nodes := sampleNodes()
	nodes[0].ShowCheckbox = &on              // docs
	nodes[0].Children[0].ShowCheckbox = &off // a
	opts := DefaultTreeOptions("t")
	opts.OnlyLeafCheckboxes = true
	tree, err := NewTree(nodes, opts)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		value string
		want  bool
	}{
		{"docs", true},
		{"a", false},
		{"b", true},
		{"sub", false},
	}
	for _, tt := range tests {
		p, err := tree.PropsFor(tt.value)
		if err != nil {
			t.Fatal(err)
		}
		if got := Select(p).ShowCheckbox; got != tt.want {
			t.Errorf("%s: ShowCheckbox = %v; want %v", tt.value, got, tt.want)
		}
	}

	p, _ := tree.PropsFor("a")
	if got := findAll(RenderHTML(p), hasClass(ClassCheckbox)); len(got) != 0 {
		t.Error("a renders a checkbox glyph despite showCheckbox: false")
	}
}

func TestTree_RenderHTML(t *testing.T) {
	t.Parallel()

	tree := newSampleTree(t, nil)
	if err := tree.SetExpanded([]string{"docs"}); err != nil {
		t.Fatal(err)
	}
	root := tree.RenderHTML()

	if cls, _ := getAttr(root, "class"); cls != "react-checkbox-tree" {
		t.Errorf("root class = %q", cls)
	}
	items := findAll(root, func(n *html.Node) bool { return n.DataAtom == atom.Li })
	if len(items) != 6 {
		t.Errorf("got %d list items; want 6 (sub stays collapsed)", len(items))
	}
	lists := findAll(root, func(n *html.Node) bool { return n.DataAtom == atom.Ol })
	if len(lists) != 2 {
		t.Errorf("got %d <ol>; want root list plus docs children", len(lists))
	}

	var b strings.Builder
	if err := html.Render(&b, root); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(b.String(), `id="t-c"`) {
		t.Error("collapsed sub must not render c")
	}
	if !strings.Contains(b.String(), `id="t-docs"`) {
		t.Error("missing docs input")
	}
}

func TestTree_CustomIconFromDescriptor(t *testing.T) {
	t.Parallel()

	nodes := []Descriptor{{Value: "r", Label: "Readme", Icon: "§"}}
	tree, err := NewTree(nodes, DefaultTreeOptions("t"))
	if err != nil {
		t.Fatal(err)
	}
	p, _ := tree.PropsFor("r")
	if p.Icon == nil || p.Icon.Glyph != "§" {
		t.Fatalf("icon = %+v", p.Icon)
	}
	if got := RenderLine(p, LineOptions{}).String(); got != "  [ ] § Readme" {
		t.Errorf("line = %q", got)
	}
	if !strings.Contains(RenderHTMLString(p), `<span class="rct-icon rct-icon-custom">§</span>`) {
		t.Error("custom icon markup missing")
	}
}

func TestTree_Filter(t *testing.T) {
	t.Parallel()

	tree := newSampleTree(t, nil)
	if n := tree.Filter("charl"); n != 1 {
		t.Fatalf("Filter() = %d matches; want 1", n)
	}
	var values []string
	for _, r := range tree.Visible() {
		values = append(values, r.Props.Value)
	}
	if want := []string{"docs", "sub", "c"}; !reflect.DeepEqual(values, want) {
		t.Errorf("filtered rows = %v; want %v", values, want)
	}
	if got := tree.Expanded(); len(got) != 0 {
		t.Errorf("filtering must not change the expanded set, got %v", got)
	}

	tree.Filter("")
	if got := len(tree.Visible()); got != 2 {
		t.Errorf("rows after clearing filter = %d; want 2", got)
	}
	if tree.FilterQuery() != "" {
		t.Error("filter query should be cleared")
	}
}

func TestTree_FilterCollapseTakesEffect(t *testing.T) {
	t.Parallel()

	tree := newSampleTree(t, nil)
	tree.Filter("charl")

	n, _ := tree.Node("sub")
	if !n.Props().Expanded {
		t.Fatal("sub should render open while it holds a match")
	}
	if !n.ToggleExpand() {
		t.Fatal("ToggleExpand() did not fire")
	}
	var values []string
	for _, r := range tree.Visible() {
		values = append(values, r.Props.Value)
	}
	if want := []string{"docs", "sub"}; !reflect.DeepEqual(values, want) {
		t.Errorf("rows after collapsing sub = %v; want %v", values, want)
	}

	n, _ = tree.Node("sub")
	if n.Props().Expanded {
		t.Fatal("sub should render closed after the collapse")
	}
	n.ToggleExpand()
	if got := len(tree.Visible()); got != 3 {
		t.Errorf("rows after reopening sub = %d; want 3", got)
	}
}

func TestTree_RenderText(t *testing.T) {
	t.Parallel()

	tree := newSampleTree(t, nil)
	if err := tree.SetExpanded([]string{"docs"}); err != nil {
		t.Fatal(err)
	}
	click(t, tree, "a")

	got := tree.RenderText(0, nil)
	want := []string{
		"▾ [-] ▫ Documents",
		"    [x] · Alpha",
		"    [ ] · Beta",
		"  ▸ [ ] ▪ Subfolder",
		"  ▸ [ ] ▪ Empty",
		"  [ ] · Music",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RenderText() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestNewTreeFromDocument(t *testing.T) {
	t.Parallel()

	doc, err := LoadFile(filepath.Join("testdata", "files.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	tree, err := NewTreeFromDocument(doc, DefaultTreeOptions("ignored"))
	if err != nil {
		t.Fatal(err)
	}
	if tree.Options().TreeID != "files" {
		t.Errorf("tree id = %q; want files from the document", tree.Options().TreeID)
	}
	if got := tree.Checked(); !reflect.DeepEqual(got, []string{"readme"}) {
		t.Errorf("Checked() = %v", got)
	}
	if got := tree.Expanded(); !reflect.DeepEqual(got, []string{"src"}) {
		t.Errorf("Expanded() = %v", got)
	}
}

func TestTree_ConcurrentReadsAndIntents(t *testing.T) {
	t.Parallel()

	tree := newSampleTree(t, nil)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if n, err := tree.Node([]string{"a", "b", "c", "music"}[i%4]); err == nil {
				n.ToggleCheck()
			}
		}()
		go func() {
			defer wg.Done()
			_ = tree.RenderText(40, nil)
			_ = tree.RenderHTML()
		}()
	}
	wg.Wait()
}

func TestTree_ValuesIgnoresFilter(t *testing.T) {
	t.Parallel()
	tree := newSampleTree(t, nil)
	tree.Filter("charlie")

	want := []string{"docs", "a", "b", "sub", "c", "empty", "music"}
	got := tree.Values()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v; want %v", got, want)
	}
	got[0] = "mutated"
	if tree.Values()[0] != "docs" {
		t.Error("Values() exposed internal order")
	}
}

func TestParseCheckModel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    CheckModel
		wantErr bool
	}{
		{"", CheckLeaf, false},
		{"leaf", CheckLeaf, false},
		{"all", CheckAll, false},
		{"folders", CheckLeaf, true},
	}
	for _, tt := range tests {
		got, err := ParseCheckModel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCheckModel(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCheckModel(%q) = %v; want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && tt.in != "" && got.String() != tt.in {
			t.Errorf("%v.String() = %q; want %q", got, got.String(), tt.in)
		}
	}
}

func TestTree_WriteHTML(t *testing.T) {
	t.Parallel()
	tree := newSampleTree(t, nil)

	var b strings.Builder
	if err := tree.WriteHTML(&b); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	out := b.String()
	if !strings.HasPrefix(out, `<div class="react-checkbox-tree"><ol>`) {
		t.Errorf("WriteHTML() = %q; want wrapper div then list", out)
	}
	if !strings.Contains(out, `id="t-music"`) {
		t.Errorf("WriteHTML() missing music input id:\n%s", out)
	}
}
