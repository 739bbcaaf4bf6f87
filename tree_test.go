package grove

import "testing"

// recordingStore captures emitted hierarchy events for assertions.
type recordingStore struct {
	events []HierarchyEvent
}

func (r *recordingStore) EmitEvent(event HierarchyEvent) {
	r.events = append(r.events, event)
}

func TestNewTree(t *testing.T) {
	tr := NewTree()
	if tr.Root() == nil {
		t.Fatal("root should not be nil")
	}
	if tr.Root().Name != "root" {
		t.Errorf("root.Name = %q, want %q", tr.Root().Name, "root")
	}
}

func TestTreeSetDebugMode(t *testing.T) {
	tr := NewTree()
	tr.SetDebugMode(true)
	if !tr.debug || !globalDebug {
		t.Error("debug should be enabled")
	}
	tr.SetDebugMode(false)
	if tr.debug || globalDebug {
		t.Error("debug should be disabled")
	}
}

func TestTreeStoreNodeEvents(t *testing.T) {
	tr := NewTree()
	store := &recordingStore{}
	tr.SetHierarchyStore(store)

	child := NewNode("child")
	tr.Root().AddChild(child)
	tr.Root().RemoveChild(child)

	if len(store.events) != 2 {
		t.Fatalf("got %d events, want 2", len(store.events))
	}
	if store.events[0].Type != EventNodeAdded || store.events[0].Node != child {
		t.Errorf("event 0: %+v", store.events[0])
	}
	if store.events[0].Parent != tr.Root() {
		t.Error("event 0 Parent should be root")
	}
	if store.events[1].Type != EventNodeRemoved || store.events[1].Node != child {
		t.Errorf("event 1: %+v", store.events[1])
	}
}

func TestTreeStoreComponentEvents(t *testing.T) {
	tr := NewTree()
	store := &recordingStore{}
	tr.SetHierarchyStore(store)

	child := NewNode("child")
	tr.Root().AddChild(child)
	h := &health{}
	child.AddComponent(h)
	child.RemoveComponent(h)

	// AddChild, attach, detach.
	if len(store.events) != 3 {
		t.Fatalf("got %d events, want 3", len(store.events))
	}
	if store.events[1].Type != EventComponentAttached || store.events[1].Component != Component(h) {
		t.Errorf("attach event: %+v", store.events[1])
	}
	if store.events[2].Type != EventComponentDetached || store.events[2].Node != child {
		t.Errorf("detach event: %+v", store.events[2])
	}
}

func TestTreeStoreActivationEvents(t *testing.T) {
	tr := NewTree()
	store := &recordingStore{}
	tr.SetHierarchyStore(store)

	child := NewNode("child")
	tr.Root().AddChild(child)
	store.events = nil

	child.SetActive(false)
	child.SetActive(false) // no change, no event
	child.SetActive(true)

	if len(store.events) != 2 {
		t.Fatalf("got %d events, want 2", len(store.events))
	}
	if store.events[0].Type != EventNodeDeactivated {
		t.Errorf("event 0: %+v", store.events[0])
	}
	if store.events[1].Type != EventNodeActivated {
		t.Errorf("event 1: %+v", store.events[1])
	}
}

func TestTreeStoreInheritedBySubtree(t *testing.T) {
	tr := NewTree()
	store := &recordingStore{}
	tr.SetHierarchyStore(store)

	// Build a detached subtree first; no events fire while detached.
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)
	if len(store.events) != 0 {
		t.Fatal("detached subtree must not emit")
	}

	// Attaching the subtree wires the store through to descendants.
	tr.Root().AddChild(parent)
	store.events = nil
	child.AddComponent(&health{})
	if len(store.events) != 1 || store.events[0].Type != EventComponentAttached {
		t.Errorf("descendant should emit through inherited store: %+v", store.events)
	}
}

func TestTreeStoreClearedOnDetach(t *testing.T) {
	tr := NewTree()
	store := &recordingStore{}
	tr.SetHierarchyStore(store)

	child := NewNode("child")
	tr.Root().AddChild(child)
	tr.Root().RemoveChild(child)
	store.events = nil

	child.AddComponent(&health{})
	if len(store.events) != 0 {
		t.Error("detached node must not emit")
	}
}

func TestTreeSetHierarchyStoreNil(t *testing.T) {
	tr := NewTree()
	store := &recordingStore{}
	tr.SetHierarchyStore(store)
	tr.SetHierarchyStore(nil)

	tr.Root().AddChild(NewNode("child"))
	if len(store.events) != 0 {
		t.Error("detached store must not receive events")
	}
}
