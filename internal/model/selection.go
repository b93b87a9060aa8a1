package model

// Selection maps every slot to at most one component.
type Selection map[Slot]*Component

func NewSelection() Selection { return make(Selection, len(DefaultSlotOrder)) }

func (s Selection) Get(slot Slot) *Component { return s[slot] }

func (s Selection) Filled(slot Slot) bool { return s[slot] != nil }

// Clone copies the map. Components are immutable and shared.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		if v != nil {
			out[k] = v
		}
	}
	return out
}

// Missing lists the slots of order that hold no component.
func (s Selection) Missing(order []Slot) []Slot {
	var out []Slot
	for _, slot := range order {
		if s[slot] == nil {
			out = append(out, slot)
		}
	}
	return out
}

// ComponentIDs returns the ids of the filled slots keyed by slot.
func (s Selection) ComponentIDs() map[Slot]string {
	out := make(map[Slot]string, len(s))
	for slot, c := range s {
		if c != nil {
			out[slot] = c.ID
		}
	}
	return out
}
