package egraph

// EClass is an equivalence class of e-nodes: every node congruent to every
// other under all merges performed so far.
//
// Nodes and Parents are both keyed by ENode.Key() rather than ENode itself
// (a struct with a slice field is not a valid Go map key); the stored
// ENode value is carried alongside the key so callers never need to
// reconstruct one. Parents being a mapping rather than a list is an
// intentional optimization: during repair, duplicate parent keys collapse
// into merges for free instead of requiring an explicit dedup pass.
type EClass struct {
	Nodes map[string]ENode

	// OriginalNode is the e-node that first created this class. Merge does
	// not consult it: when this class is absorbed, Merge refreshes the
	// hashcons entry of every node in Nodes, which includes this one.
	OriginalNode ENode

	// Parents maps an e-node that references this class among its
	// children to the e-class id that node lives in.
	Parents map[string]parentEntry
}

type parentEntry struct {
	node  ENode
	class EClassId
}

func newEClass(n ENode) *EClass {
	nodes := make(map[string]ENode, 1)
	nodes[n.Key()] = n
	return &EClass{
		Nodes:        nodes,
		OriginalNode: n,
		Parents:      make(map[string]parentEntry),
	}
}

// addParent records that node n (living in e-class c) references this
// class among its children.
func (ec *EClass) addParent(n ENode, c EClassId) {
	ec.Parents[n.Key()] = parentEntry{node: n, class: c}
}

// absorb folds o's nodes and parents into ec (ec is the survivor).
func (ec *EClass) absorb(o *EClass) {
	for k, n := range o.Nodes {
		ec.Nodes[k] = n
	}
	for k, p := range o.Parents {
		ec.Parents[k] = p
	}
}
