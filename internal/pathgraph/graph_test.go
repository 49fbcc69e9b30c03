package pathgraph

import (
	"strings"
	"testing"
)

// testNode builds a minimally valid node with tasks on every channel.
func testNode(id string, order int, prereqs ...string) Node {
	tasks := make(map[Channel]Task, 3)
	for _, ch := range AllChannels() {
		tasks[ch] = Task{Summary: id + " task " + string(ch)}
	}
	return Node{
		ID:            id,
		Name:          id,
		Order:         order,
		Prerequisites: prereqs,
		ChannelTasks:  tasks,
	}
}

func TestNewRejectsEmptyNodeSet(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for empty node set")
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Node{testNode("a", 1), testNode("a", 2)})
	if err == nil {
		t.Fatal("expected error for duplicate IDs")
	}
	if !strings.Contains(err.Error(), `duplicate node ID: "a"`) {
		t.Errorf("error %q does not mention the duplicate", err)
	}
}

func TestNewRejectsDanglingPrerequisite(t *testing.T) {
	_, err := New([]Node{testNode("a", 1), testNode("b", 2, "missing")})
	if err == nil {
		t.Fatal("expected error for dangling prerequisite")
	}
	if !strings.Contains(err.Error(), "nonexistent prerequisite") {
		t.Errorf("error %q does not mention the dangling prerequisite", err)
	}
}

func TestNewRejectsCycle(t *testing.T) {
	_, err := New([]Node{
		testNode("root", 1),
		testNode("a", 2, "root", "c"),
		testNode("b", 3, "a"),
		testNode("c", 4, "b"),
	})
	if err == nil {
		t.Fatal("expected error for cyclic graph")
	}
	if !strings.Contains(err.Error(), "cycle detected") {
		t.Errorf("error %q does not mention the cycle", err)
	}
}

func TestNewRejectsMissingChannelTask(t *testing.T) {
	n := testNode("a", 1)
	delete(n.ChannelTasks, ChannelC)
	_, err := New([]Node{n})
	if err == nil {
		t.Fatal("expected error for missing channel task")
	}
	if !strings.Contains(err.Error(), "no task for channel C") {
		t.Errorf("error %q does not mention the missing task", err)
	}
}

func TestNodesReturnsTopologicalOrder(t *testing.T) {
	g, err := New([]Node{
		testNode("leaf", 4, "mid"),
		testNode("mid", 2, "root"),
		testNode("root", 1),
		testNode("side", 3, "root"),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	pos := make(map[string]int)
	for i, n := range g.Nodes() {
		pos[n.ID] = i
	}
	for _, n := range g.Nodes() {
		for _, pre := range n.Prerequisites {
			if pos[pre] >= pos[n.ID] {
				t.Errorf("prerequisite %s at %d appears after %s at %d", pre, pos[pre], n.ID, pos[n.ID])
			}
		}
	}
}

func TestSuccessorsOrderedByNodeOrder(t *testing.T) {
	g, err := New([]Node{
		testNode("root", 1),
		testNode("late", 5, "root"),
		testNode("early", 2, "root"),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	succ := g.Successors("root")
	if len(succ) != 2 || succ[0] != "early" || succ[1] != "late" {
		t.Errorf("Successors(root) = %v, want [early late]", succ)
	}
}

func TestIsUnlocked(t *testing.T) {
	g, err := New([]Node{
		testNode("root", 1),
		testNode("a", 2, "root"),
		testNode("join", 3, "root", "a"),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if !g.IsUnlocked("root", nil) {
		t.Error("root should be unlocked with nothing completed")
	}
	if g.IsUnlocked("join", map[string]bool{"root": true}) {
		t.Error("join should stay locked until both prerequisites complete")
	}
	if !g.IsUnlocked("join", map[string]bool{"root": true, "a": true}) {
		t.Error("join should unlock once all prerequisites complete")
	}
	if g.IsUnlocked("nonexistent", nil) {
		t.Error("unknown node must not report unlocked")
	}
}

func TestUnlockedSuccessorsSkipsCompletedAndLocked(t *testing.T) {
	g, err := New([]Node{
		testNode("root", 1),
		testNode("a", 2, "root"),
		testNode("b", 3, "root"),
		testNode("gated", 4, "root", "a"),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	completed := map[string]bool{"root": true, "a": true}
	succ := g.UnlockedSuccessors("root", completed)
	if len(succ) != 2 || succ[0] != "b" || succ[1] != "gated" {
		t.Errorf("UnlockedSuccessors(root) = %v, want [b gated]", succ)
	}
}

func TestDefaultGraphShape(t *testing.T) {
	g := Default()

	roots := g.Roots()
	if len(roots) != 1 || roots[0] != "api_calling" {
		t.Fatalf("Roots() = %v, want [api_calling]", roots)
	}
	if len(g.Nodes()) != 7 {
		t.Errorf("seed has %d nodes, want 7", len(g.Nodes()))
	}

	branches := g.Successors("api_calling")
	if len(branches) != 2 || branches[0] != "model_deployment" || branches[1] != "no_code_ai" {
		t.Errorf("Successors(api_calling) = %v, want [model_deployment no_code_ai]", branches)
	}

	for _, leaf := range []string{"backend_dev", "frontend_dev"} {
		if succ := g.Successors(leaf); len(succ) != 0 {
			t.Errorf("Successors(%s) = %v, want none", leaf, succ)
		}
	}
}

func TestChannelStepBounds(t *testing.T) {
	if got := ChannelA.Up(); got != ChannelB {
		t.Errorf("A.Up() = %s, want B", got)
	}
	if got := ChannelC.Up(); got != ChannelC {
		t.Errorf("C.Up() = %s, want C (ceiling)", got)
	}
	if got := ChannelB.Down(); got != ChannelA {
		t.Errorf("B.Down() = %s, want A", got)
	}
	if got := ChannelA.Down(); got != ChannelA {
		t.Errorf("A.Down() = %s, want A (floor)", got)
	}
	if Channel("D").Valid() {
		t.Error("channel D must not validate")
	}
}
