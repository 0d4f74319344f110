package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	vo "praxis/internal/domain/audit/valueobjects"
)

// GenesisHash is the prev hash of the first entry in an organization's chain.
const GenesisHash = ""

// Entry is one append-only, hash-chained audit record. Each entry's
// recordHash covers its own identifying fields plus the previous entry's
// recordHash, so mutating any stored entry breaks verification for it and
// every entry after it.
type Entry struct {
	id            string
	orgID         uint
	actorID       uint
	actorRole     string
	action        vo.Action
	resourceType  string
	resourceID    string
	before        map[string]interface{}
	after         map[string]interface{}
	correlationID string
	seq           uint64
	prevHash      string
	recordHash    string
	createdAt     time.Time
}

// NewEntry builds an unchained entry. Chain(seq, prevHash) must be called
// under the per-organization serialization point before persisting.
func NewEntry(
	orgID uint,
	actorID uint,
	actorRole string,
	action vo.Action,
	resourceType string,
	resourceID string,
	before, after map[string]interface{},
	correlationID string,
) (*Entry, error) {
	if orgID == 0 {
		return nil, fmt.Errorf("organization ID is required")
	}
	if actorID == 0 && actorRole != "system" {
		return nil, fmt.Errorf("actor ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid audit action: %s", action)
	}
	if len(resourceType) == 0 {
		return nil, fmt.Errorf("resource type is required")
	}
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	return &Entry{
		id:            uuid.NewString(),
		orgID:         orgID,
		actorID:       actorID,
		actorRole:     actorRole,
		action:        action,
		resourceType:  resourceType,
		resourceID:    resourceID,
		before:        before,
		after:         after,
		correlationID: correlationID,
		createdAt:     time.Now(),
	}, nil
}

func ReconstructEntry(
	id string,
	orgID uint,
	actorID uint,
	actorRole string,
	action vo.Action,
	resourceType string,
	resourceID string,
	before, after map[string]interface{},
	correlationID string,
	seq uint64,
	prevHash string,
	recordHash string,
	createdAt time.Time,
) (*Entry, error) {
	if id == "" {
		return nil, fmt.Errorf("entry ID is required")
	}
	return &Entry{
		id:            id,
		orgID:         orgID,
		actorID:       actorID,
		actorRole:     actorRole,
		action:        action,
		resourceType:  resourceType,
		resourceID:    resourceID,
		before:        before,
		after:         after,
		correlationID: correlationID,
		seq:           seq,
		prevHash:      prevHash,
		recordHash:    recordHash,
		createdAt:     createdAt,
	}, nil
}

func (e *Entry) ID() string                       { return e.id }
func (e *Entry) OrgID() uint                      { return e.orgID }
func (e *Entry) ActorID() uint                    { return e.actorID }
func (e *Entry) ActorRole() string                { return e.actorRole }
func (e *Entry) Action() vo.Action                { return e.action }
func (e *Entry) ResourceType() string             { return e.resourceType }
func (e *Entry) ResourceID() string               { return e.resourceID }
func (e *Entry) Before() map[string]interface{}   { return e.before }
func (e *Entry) After() map[string]interface{}    { return e.after }
func (e *Entry) CorrelationID() string            { return e.correlationID }
func (e *Entry) Seq() uint64                      { return e.seq }
func (e *Entry) PrevHash() string                 { return e.prevHash }
func (e *Entry) RecordHash() string               { return e.recordHash }
func (e *Entry) CreatedAt() time.Time             { return e.createdAt }

// Chain assigns the entry its position and computes its record hash from the
// predecessor's hash. Must run inside the per-org serialized append.
func (e *Entry) Chain(seq uint64, prevHash string) {
	e.seq = seq
	e.prevHash = prevHash
	e.recordHash = ComputeHash(prevHash, e.id, e.actorID, e.action, e.resourceType, e.resourceID, e.createdAt)
}

// ExpectedHash recomputes the hash from the entry's own stored fields and the
// given predecessor hash. Used by chain verification.
func (e *Entry) ExpectedHash(prevHash string) string {
	return ComputeHash(prevHash, e.id, e.actorID, e.action, e.resourceType, e.resourceID, e.createdAt)
}

// ComputeHash derives a record hash as
// sha256(prevHash | id | actorID | action | resourceType | resourceID | createdAtUnixMilli).
func ComputeHash(prevHash, id string, actorID uint, action vo.Action, resourceType, resourceID string, createdAt time.Time) string {
	input := strings.Join([]string{
		prevHash,
		id,
		strconv.FormatUint(uint64(actorID), 10),
		action.String(),
		resourceType,
		resourceID,
		strconv.FormatInt(createdAt.UnixMilli(), 10),
	}, "|")
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
