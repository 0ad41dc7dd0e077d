package core

import "testing"

func TestActionGroups(t *testing.T) {
	cases := []struct {
		action Action
		group  InputGroup
	}{
		{ActionLeft, GroupMovement},
		{ActionRight, GroupMovement},
		{ActionFire, GroupFire},
		{ActionPause, GroupPause},
		{ActionQuit, GroupQuit},
		{ActionRestart, GroupSystem},
		{ActionNone, GroupNone},
	}

	for _, c := range cases {
		if got := c.action.Group(); got != c.group {
			t.Errorf("%s.Group() = %v, expected %v", c.action, got, c.group)
		}
	}
}

func TestInputFrameLatestPerGroup(t *testing.T) {
	f := NewInputFrame()

	// Later action in the same group replaces the earlier one
	f.Set(ActionLeft)
	f.Set(ActionRight)

	if f.Has(ActionLeft) {
		t.Error("ActionLeft should have been replaced by ActionRight")
	}
	if !f.Has(ActionRight) {
		t.Error("ActionRight should be the surviving movement action")
	}
	if f.Latest(GroupMovement) != ActionRight {
		t.Errorf("Latest(GroupMovement) = %v, expected ActionRight", f.Latest(GroupMovement))
	}

	// Other groups are independent
	f.Set(ActionFire)
	if !f.Has(ActionRight) || !f.Has(ActionFire) {
		t.Error("Actions in different groups should coexist")
	}
}

func TestInputFrameSetNone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionNone)

	if f.Latest(GroupNone) != ActionNone {
		t.Error("Setting ActionNone should be a no-op")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionFire)

	f.Clear()

	if f.Has(ActionLeft) || f.Has(ActionFire) {
		t.Error("Clear should drop all buffered actions")
	}
	if f.Latest(GroupMovement) != ActionNone {
		t.Error("Latest on a cleared frame should be ActionNone")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionRight) {
		t.Error("Clone should be independent of the original frame")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionFire) {
		t.Error("Zero-value frame should hold no actions")
	}
	if f.Latest(GroupMovement) != ActionNone {
		t.Error("Zero-value frame Latest should be ActionNone")
	}

	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Set on a zero-value frame should work")
	}
}
