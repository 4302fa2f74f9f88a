package form

import (
	"context"
	"sync"
	"time"

	appDomain "scholarhub-backend/internal/domain/application"
)

// Snapshot is one saved draft state: the payload plus wizard bookkeeping.
type Snapshot struct {
	Payload   appDomain.Payload `json:"payload"`
	StepIndex int               `json:"stepIndex"`
	SavedAt   time.Time         `json:"savedAt"`
}

// LocalStore is the synchronous, always-available draft tier (the
// localStorage analogue). It never fails in normal operation and is the
// fallback when the remote tier is unreachable.
type LocalStore interface {
	Load(scholarshipID string) (*Snapshot, bool)
	Save(scholarshipID string, s Snapshot)
	Clear(scholarshipID string)
}

// RemoteStore is the server-side draft tier. Best-effort: every failure is
// logged, never surfaced to the user.
type RemoteStore interface {
	Load(ctx context.Context, scholarshipID string) (*Snapshot, error)
	Save(ctx context.Context, scholarshipID string, s Snapshot) error
	Clear(ctx context.Context, scholarshipID string) error
}

// MemoryStore keeps snapshots in-process, keyed by scholarshipId.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]Snapshot)}
}

func (m *MemoryStore) Load(scholarshipID string) (*Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.data[scholarshipID]
	if !ok {
		return nil, false
	}
	return &s, true
}

func (m *MemoryStore) Save(scholarshipID string, s Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[scholarshipID] = s
}

func (m *MemoryStore) Clear(scholarshipID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, scholarshipID)
}

// merge overlays remote onto local, section by section: the remote tier is
// authoritative when reachable, but a section it never saw survives from the
// local copy.
func merge(local, remote *Snapshot) *Snapshot {
	if remote == nil {
		return local
	}
	if local == nil {
		return remote
	}
	out := *local
	out.SavedAt = remote.SavedAt
	// The remote tier does not track the wizard position; keep the local one
	// unless the remote snapshot carries a real index.
	if remote.StepIndex > 0 {
		out.StepIndex = remote.StepIndex
	}

	if remote.Payload.ScholarshipID != "" {
		out.Payload.ScholarshipID = remote.Payload.ScholarshipID
	}
	if remote.Payload.PersonalInfo != nil {
		out.Payload.PersonalInfo = remote.Payload.PersonalInfo
	}
	if remote.Payload.AddressInfo != nil {
		out.Payload.AddressInfo = remote.Payload.AddressInfo
	}
	if remote.Payload.AcademicInfo != nil {
		out.Payload.AcademicInfo = remote.Payload.AcademicInfo
	}
	if remote.Payload.FamilyInfo != nil {
		out.Payload.FamilyInfo = remote.Payload.FamilyInfo
	}
	if remote.Payload.FinancialInfo != nil {
		out.Payload.FinancialInfo = remote.Payload.FinancialInfo
	}
	if remote.Payload.AdditionalInfo != nil {
		out.Payload.AdditionalInfo = remote.Payload.AdditionalInfo
	}
	if len(remote.Payload.Documents) > 0 {
		out.Payload.Documents = remote.Payload.Documents
	}
	return &out
}
