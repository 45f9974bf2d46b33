package search

import "github.com/resqnet/protosearch/core"

// SearchMonitor provides hooks to observe the retrieval process.
// Implement this interface to track intermediate steps and results during retrieval.
type SearchMonitor interface {
	Start(query string)
	AfterCandidateFetch(candidates []*core.ProtocolChunk)
	DocumentScored(id core.ID, score float64)
	Finish(results []core.RankedDocument)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                              {}
func (n *noopMonitor) AfterCandidateFetch(_ []*core.ProtocolChunk) {}
func (n *noopMonitor) DocumentScored(_ core.ID, _ float64)         {}
func (n *noopMonitor) Finish(_ []core.RankedDocument)              {}
