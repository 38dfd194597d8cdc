package response

// memberList pairs an insertion-ordered member sequence with a
// name→position index. Member output order is a protocol-visible guarantee,
// yet alias resolution and argument extraction do repeated name lookups, so
// traversal stays O(n) in insertion order while lookup stays average O(1).
type memberList struct {
	members []Member
	index   map[string]int
}

func newMemberList() *memberList {
	return &memberList{index: make(map[string]int)}
}

func (ml *memberList) reserve(n int) {
	if cap(ml.members) < n {
		grown := make([]Member, len(ml.members), n)
		copy(grown, ml.members)
		ml.members = grown
	}
}

func (ml *memberList) len() int { return len(ml.members) }

// append rejects names that are already indexed; the sequence and index are
// left untouched on rejection.
func (ml *memberList) append(name string, v Value) error {
	if _, exists := ml.index[name]; exists {
		return duplicateMemberErr(name)
	}
	ml.index[name] = len(ml.members)
	ml.members = append(ml.members, Member{Name: name, Value: v})
	return nil
}

// find returns the member's position or NotFound.
func (ml *memberList) find(name string) int {
	if pos, ok := ml.index[name]; ok {
		return pos
	}
	return NotFound
}

func (ml *memberList) clone() *memberList {
	out := &memberList{
		members: make([]Member, len(ml.members)),
		index:   make(map[string]int, len(ml.index)),
	}
	for i, m := range ml.members {
		out.members[i] = Member{Name: m.Name, Value: m.Value.Clone()}
	}
	for name, pos := range ml.index {
		out.index[name] = pos
	}
	return out
}

// release moves the sequence out and clears the index.
func (ml *memberList) release() []Member {
	out := ml.members
	ml.members = nil
	ml.index = make(map[string]int)
	return out
}
