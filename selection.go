package wheel

import (
	"math"
	"reflect"
)

// indexFromOffset maps the current offset to an item index. Offsets above
// the first item (elastic overscroll) still select item 0.
func (p *Picker) indexFromOffset() int {
	if len(p.items) == 0 {
		return -1
	}
	offset := p.normalizedOffset()
	if offset < 0 || !p.geom.Scrollable() {
		return 0
	}
	return int(math.Floor(offset / p.geom.ItemHeight))
}

// selectIndex clamps idx into [-1, len-1], commits it together with the item
// at that position and returns the clamped index.
func (p *Picker) selectIndex(idx int) int {
	if idx >= len(p.items) {
		idx = len(p.items) - 1
	}
	if idx < -1 {
		idx = -1
	}
	p.selectedIndex = idx
	p.selectedItem = nil
	if idx >= 0 {
		p.selectedItem = p.items[idx]
	}
	return idx
}

// fireChange recomputes the selection from the offset and emits a change if
// the index or the item at that index differs from the committed pair.
// Comparing the item as well as the index lets a replaced item at the same
// position still notify listeners. Reports whether an event was emitted.
func (p *Picker) fireChange() bool {
	newIndex := p.indexFromOffset()
	var newItem Item
	if newIndex >= 0 && newIndex < len(p.items) {
		newItem = p.items[newIndex]
	}
	if newIndex == p.selectedIndex && sameItem(newItem, p.selectedItem) {
		return false
	}
	idx := p.selectIndex(newIndex)
	ev := ChangeEvent{Index: idx, Value: p.selectedItem}
	p.debugf("change: index=%d value=%v", ev.Index, ev.Value)
	p.emitChange(ev)
	return true
}

// sameItem reports whether a and b are the same item. Comparable values are
// compared with ==; slices, maps and funcs are compared by identity and
// other uncomparable values structurally, so that items never panic.
func sameItem(a, b Item) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		va := reflect.ValueOf(a)
		if va.Comparable() {
			return a == b
		}
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	}
	return reflect.DeepEqual(a, b)
}

// SelectedIndex returns the committed selection index, or -1 when nothing is
// selected.
func (p *Picker) SelectedIndex() int {
	return p.selectedIndex
}

// SelectedItem returns the committed selected item, or nil.
func (p *Picker) SelectedItem() Item {
	return p.selectedItem
}
