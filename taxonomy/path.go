package taxonomy

// SourcePath is a root-to-leaf run of source nodes. Construction copies the
// node slice; paths are read-only afterwards.
type SourcePath struct {
	nodes []SourceNode
}

// NewSourcePath builds a path from root to leaf. At least one node is
// required.
func NewSourcePath(nodes ...SourceNode) (SourcePath, error) {
	if len(nodes) == 0 {
		return SourcePath{}, ErrEmptyPath
	}
	return SourcePath{nodes: append([]SourceNode(nil), nodes...)}, nil
}

// Len returns the number of nodes on the path.
func (p SourcePath) Len() int { return len(p.nodes) }

// At returns the i-th node from the root.
func (p SourcePath) At(i int) SourceNode { return p.nodes[i] }

// Labels returns the node labels from root to leaf.
func (p SourcePath) Labels() []string {
	labels := make([]string, len(p.nodes))
	for i, n := range p.nodes {
		labels[i] = n.Label()
	}
	return labels
}

// CandidatePath is a root-to-leaf run of candidate nodes in the target
// taxonomy.
type CandidatePath struct {
	nodes []CandidateNode
}

// NewCandidatePath builds a candidate path from root to leaf labels. Every
// label must be non-empty.
func NewCandidatePath(labels ...string) (CandidatePath, error) {
	if len(labels) == 0 {
		return CandidatePath{}, ErrEmptyPath
	}
	nodes := make([]CandidateNode, len(labels))
	for i, label := range labels {
		n, err := NewCandidateNode(label)
		if err != nil {
			return CandidatePath{}, err
		}
		nodes[i] = n
	}
	return CandidatePath{nodes: nodes}, nil
}

// Len returns the number of nodes on the path.
func (p CandidatePath) Len() int { return len(p.nodes) }

// At returns the i-th node from the root.
func (p CandidatePath) At(i int) CandidateNode { return p.nodes[i] }

// Labels returns the node labels from root to leaf.
func (p CandidatePath) Labels() []string {
	labels := make([]string, len(p.nodes))
	for i, n := range p.nodes {
		labels[i] = n.Label()
	}
	return labels
}
