package segno

import (
	"slices"
	"testing"
)

// node is a minimal test object.
type node struct {
	PositionedObject
	name string
}

func newNode(name string, pos Point, parent Object) *node {
	n := &node{name: name}
	Attach(n, pos, parent)
	return n
}

func TestAttachBuildsTree(t *testing.T) {
	root := newNode("root", ORIGIN, nil)
	a := newNode("a", Pt(1, 2), root)
	b := newNode("b", Pt(3, 4), a)

	if a.Parent() != root {
		t.Error("expected a's parent to be root")
	}
	if len(root.Children()) != 1 || root.Children()[0] != a {
		t.Errorf("root children = %v", root.Children())
	}
	if b.Parent() != a {
		t.Error("expected b's parent to be a")
	}
}

func TestRemove(t *testing.T) {
	root := newNode("root", ORIGIN, nil)
	a := newNode("a", Pt(1, 2), root)
	newNode("b", Pt(3, 4), root)

	Remove(a)
	if a.Parent() != nil {
		t.Error("expected removed object to have nil parent")
	}
	if len(root.Children()) != 1 {
		t.Errorf("expected 1 remaining child, got %d", len(root.Children()))
	}

	// Removing twice is a no-op.
	Remove(a)
}

func TestTreePos(t *testing.T) {
	root := newNode("root", Pt(10, 10), nil)
	a := newNode("a", Pt(1, 2), root)
	b := newNode("b", Pt(3, 4), a)

	if got := TreePos(b); got != Pt(14, 16) {
		t.Errorf("TreePos = %v, want (14, 16)", got)
	}
	if got := MapBetween(a, b); got != Pt(3, 4) {
		t.Errorf("MapBetween(a, b) = %v, want (3, 4)", got)
	}
	if got := MapBetween(b, a); got != Pt(-3, -4) {
		t.Errorf("MapBetween(b, a) = %v, want (-3, -4)", got)
	}
	if got := DescendantPosX(root, b); got != 4 {
		t.Errorf("DescendantPosX = %v, want 4", got)
	}
}

func TestAncestorsAndDescendants(t *testing.T) {
	root := newNode("root", ORIGIN, nil)
	a := newNode("a", ORIGIN, root)
	b := newNode("b", ORIGIN, a)
	c := newNode("c", ORIGIN, root)

	var up []string
	for o := range Ancestors(b) {
		up = append(up, o.(*node).name)
	}
	if !slices.Equal(up, []string{"a", "root"}) {
		t.Errorf("Ancestors = %v", up)
	}

	var down []string
	for o := range Descendants(root) {
		down = append(down, o.(*node).name)
	}
	if !slices.Equal(down, []string{"a", "b", "c"}) {
		t.Errorf("Descendants = %v", down)
	}
	_ = c
}

func TestDocumentAndPageLookup(t *testing.T) {
	doc := NewDocument(PaperA4)
	page := doc.PageAt(0)
	obj := newNode("obj", Pt(5, 5), page)

	if got := PageOf(obj); got != page {
		t.Error("PageOf did not find the page ancestor")
	}
	if got := DocumentOf(obj); got != doc {
		t.Error("DocumentOf did not find the document root")
	}

	free := newNode("free", ORIGIN, nil)
	if PageOf(free) != nil {
		t.Error("expected nil page for detached object")
	}
	if DocumentOf(free) != nil {
		t.Error("expected nil document for detached object")
	}
}

func TestFlowableOf(t *testing.T) {
	doc := NewDocument(PaperA4)
	flow := NewFlowable(ORIGIN, doc.PageAt(0), Mm(300), Mm(20))
	obj := newNode("obj", ORIGIN, flow)

	if got := FlowableOf(obj); got != flow {
		t.Error("FlowableOf did not find the flowable ancestor")
	}
	if FlowableOf(flow) != nil {
		t.Error("expected the flowable itself to have no flowable ancestor")
	}
}
