package wheel

// Add inserts item before position index, or appends it when index is
// omitted or past the end. Negative indices insert at the front. The first
// item ever added is scrolled into place without animation. Returns the item
// and true, or nil and false before Build.
func (p *Picker) Add(item Item, index ...int) (Item, bool) {
	if p.root == nil || p.list == nil {
		return nil, false
	}
	idx := len(p.items)
	if len(index) > 0 {
		idx = max(index[0], 0)
	}

	node := p.buildItem(item)
	if idx < len(p.items) {
		p.list.AddChildAt(node, min(idx, p.list.NumChildren()))
		p.items = append(p.items, nil)
		copy(p.items[idx+1:], p.items[idx:])
		p.items[idx] = item
	} else {
		idx = len(p.items)
		p.list.AddChild(node)
		p.items = append(p.items, item)
	}

	p.finishAnimation()
	p.layout(false)
	if len(p.items) == 1 {
		p.scrollToIndex(idx)
	}
	p.debugf("add: index=%d length=%d", idx, len(p.items))
	p.fireChange()
	return item, true
}

// Remove deletes the item at index. When the last item is removed the
// selection moves to its predecessor; otherwise the next item slides into
// the slot. Returns the removed items, or nil and false when the picker is
// not built, empty, or index is out of range.
func (p *Picker) Remove(index int) ([]Item, bool) {
	if p.root == nil || p.list == nil || len(p.items) == 0 {
		return nil, false
	}
	if index < 0 || index >= len(p.items) || index >= p.list.NumChildren() {
		return nil, false
	}

	successor := index
	if successor == len(p.items)-1 {
		successor--
	}

	p.list.RemoveChildAt(index).Dispose()
	removed := []Item{p.items[index]}
	p.items = append(p.items[:index], p.items[index+1:]...)

	p.finishAnimation()
	p.layout(false)
	if successor < index {
		p.scrollToIndex(successor)
	}
	p.debugf("remove: index=%d successor=%d length=%d", index, successor, len(p.items))
	p.fireChange()
	return removed, true
}
