package analysis

import (
	"sync"

	"clarion/internal/types"
)

// Database is the read path every pass resolves cross-contract
// references through. It is injected explicitly; no pass reaches for
// ambient global state. Implementations must be safe for concurrent
// reads: checking is read-mostly, each contract's record is written once
// by its own analysis run.
type Database interface {
	// LoadContract returns a previously completed analysis, or nil.
	LoadContract(contractID types.ContractIdentifier) *ContractAnalysis
	// InsertContract stores a completed analysis for future lookups.
	InsertContract(analysis *ContractAnalysis)
}

// MemoryDatabase is the in-memory Database used by the CLI, the language
// server, and tests.
type MemoryDatabase struct {
	mu        sync.RWMutex
	contracts map[types.ContractIdentifier]*ContractAnalysis
}

func NewMemoryDatabase() *MemoryDatabase {
	return &MemoryDatabase{
		contracts: make(map[types.ContractIdentifier]*ContractAnalysis),
	}
}

func (db *MemoryDatabase) LoadContract(contractID types.ContractIdentifier) *ContractAnalysis {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.contracts[contractID]
}

func (db *MemoryDatabase) InsertContract(analysis *ContractAnalysis) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.contracts[analysis.ContractID] = analysis
}
