package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MyelinBots/matchbot-go/internal/db/repositories/block"
	"github.com/MyelinBots/matchbot-go/internal/db/repositories/chat_message"
	"github.com/MyelinBots/matchbot-go/internal/db/repositories/like"
	"github.com/MyelinBots/matchbot-go/internal/db/repositories/profile"
	"github.com/MyelinBots/matchbot-go/internal/db/repositories/report"
	"github.com/MyelinBots/matchbot-go/internal/db/repositories/secret_crush"
)

// ErrDurable marks an operation whose in-memory update applied but whose
// durable write did not. The memory result stands; the caller decides
// whether that is fatal. Handlers in this bot log it and carry on.
var ErrDurable = errors.New("durable write failed")

// ChatEntry is one message in a pair's chat log.
type ChatEntry struct {
	Sender    int64
	Text      string
	Timestamp time.Time
}

// Counts feeds the status page.
type Counts struct {
	Users            int
	CompleteProfiles int
	Matches          int
}

/*
STORE INTERFACE

Writes apply to memory synchronously, then to the durable repositories.
A durable failure logs and comes back wrapped in ErrDurable. Reads prefer
memory and fall back to the repositories on a miss (read-through). Nothing
spans the two layers transactionally; they can diverge until the next
successful write or restart.
*/

type Store interface {
	Load(ctx context.Context) error

	GetProfile(ctx context.Context, id int64) (*profile.Profile, error)
	SaveProfile(ctx context.Context, p *profile.Profile) error
	TouchUsername(id int64, username string)
	FindByUsername(username string) *profile.Profile
	AllProfiles() []*profile.Profile
	CompleteProfiles() []*profile.Profile

	HasLiked(sender, receiver int64) bool
	AddLike(ctx context.Context, sender, receiver int64) error
	Liked(id int64) []int64

	AreMatched(a, b int64) bool
	Matches(id int64) []int64
	MarkMatched(ctx context.Context, a, b int64) error
	RemoveMatch(ctx context.Context, a, b int64) error

	AddBlock(ctx context.Context, blocker, blocked int64) error
	BlockedEither(a, b int64) bool
	Blocks(id int64) []int64

	AddReport(ctx context.Context, reporter, reported int64, reason, reference string) error

	HasCrush(crusher, crushee int64) bool
	Crushes(id int64) []int64
	AddRegisteredCrush(ctx context.Context, crusher, crushee int64) error
	SetCrushMutual(ctx context.Context, a, b int64) error
	AddExternalCrush(ctx context.Context, crusher int64, name, social, photoHex string) error

	AppendChat(ctx context.Context, sender, receiver int64, text string) error
	ChatHistory(ctx context.Context, a, b int64) ([]ChatEntry, error)

	Counts() Counts
}

/*
STORE IMPL
*/

// pairKey orders a pair low-high so both directions land on one log.
type pairKey [2]int64

func newPairKey(a, b int64) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

type StoreImpl struct {
	profiles profile.ProfileRepository
	likes    like.LikeRepository
	blocks   block.BlockRepository
	reports  report.ReportRepository
	crushes  secret_crush.SecretCrushRepository
	messages chat_message.ChatMessageRepository

	mu          sync.RWMutex
	profileByID map[int64]*profile.Profile
	byRowID     map[uint]int64
	likeSets    map[int64]map[int64]struct{}
	matchSets   map[int64]map[int64]struct{}
	blockSets   map[int64]map[int64]struct{}
	crushSets   map[int64]map[int64]struct{}
	reportLog   map[int64][]int64
	chatLogs    map[pairKey][]ChatEntry
}

func New(
	profiles profile.ProfileRepository,
	likes like.LikeRepository,
	blocks block.BlockRepository,
	reports report.ReportRepository,
	crushes secret_crush.SecretCrushRepository,
	messages chat_message.ChatMessageRepository,
) Store {
	return &StoreImpl{
		profiles:    profiles,
		likes:       likes,
		blocks:      blocks,
		reports:     reports,
		crushes:     crushes,
		messages:    messages,
		profileByID: make(map[int64]*profile.Profile),
		byRowID:     make(map[uint]int64),
		likeSets:    make(map[int64]map[int64]struct{}),
		matchSets:   make(map[int64]map[int64]struct{}),
		blockSets:   make(map[int64]map[int64]struct{}),
		crushSets:   make(map[int64]map[int64]struct{}),
		reportLog:   make(map[int64][]int64),
		chatLogs:    make(map[pairKey][]ChatEntry),
	}
}

func cloneProfile(p *profile.Profile) *profile.Profile {
	cp := *p
	cp.Targets = make([]profile.TargetUniversity, len(p.Targets))
	copy(cp.Targets, p.Targets)
	return &cp
}

func addEdge(sets map[int64]map[int64]struct{}, from, to int64) {
	if sets[from] == nil {
		sets[from] = make(map[int64]struct{})
	}
	sets[from][to] = struct{}{}
}

func hasEdge(sets map[int64]map[int64]struct{}, from, to int64) bool {
	_, ok := sets[from][to]
	return ok
}

/*
WARM START
*/

// Load pulls the durable state into memory: profiles first (they carry the
// row-id translation), then likes, blocks and registered crushes. Chat logs
// are read through per pair on demand instead.
func (s *StoreImpl) Load(ctx context.Context) error {
	profiles, err := s.profiles.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load profiles: %w", err)
	}
	likes, err := s.likes.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load likes: %w", err)
	}
	blocks, err := s.blocks.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load blocks: %w", err)
	}
	crushes, err := s.crushes.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load secret crushes: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range profiles {
		s.profileByID[p.TelegramID] = cloneProfile(p)
		s.byRowID[p.ID] = p.TelegramID
	}
	for _, l := range likes {
		sender, okS := s.byRowID[l.SenderID]
		receiver, okR := s.byRowID[l.ReceiverID]
		if !okS || !okR {
			continue
		}
		addEdge(s.likeSets, sender, receiver)
		if l.IsMatch {
			addEdge(s.matchSets, sender, receiver)
			addEdge(s.matchSets, receiver, sender)
		}
	}
	for _, b := range blocks {
		blocker, okB := s.byRowID[b.BlockerID]
		blocked, okD := s.byRowID[b.BlockedID]
		if !okB || !okD {
			continue
		}
		addEdge(s.blockSets, blocker, blocked)
	}
	for _, c := range crushes {
		if c.CrusheeID == nil {
			continue
		}
		crusher, okC := s.byRowID[c.CrusherID]
		crushee, okE := s.byRowID[*c.CrusheeID]
		if !okC || !okE {
			continue
		}
		addEdge(s.crushSets, crusher, crushee)
	}

	log.Printf("store: loaded %d profiles, %d likes, %d blocks, %d crushes", len(profiles), len(likes), len(blocks), len(crushes))
	return nil
}

// rowIDs resolves both telegram ids to durable row ids. Missing entries mean
// the profile never made it to the database; edge writes degrade to memory.
func (s *StoreImpl) rowIDs(a, b int64) (uint, uint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pa := s.profileByID[a]
	pb := s.profileByID[b]
	if pa == nil || pb == nil || pa.ID == 0 || pb.ID == 0 {
		return 0, 0, false
	}
	return pa.ID, pb.ID, true
}

/*
PROFILES
*/

func (s *StoreImpl) GetProfile(ctx context.Context, id int64) (*profile.Profile, error) {
	s.mu.RLock()
	p := s.profileByID[id]
	s.mu.RUnlock()
	if p != nil {
		return cloneProfile(p), nil
	}

	// read-through
	loaded, err := s.profiles.GetByTelegramID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get profile %d: %w", id, err)
	}
	if loaded == nil {
		return nil, nil
	}

	log.Printf("store: profile %d found in database but not memory, loading", id)
	s.mu.Lock()
	s.profileByID[id] = cloneProfile(loaded)
	s.byRowID[loaded.ID] = id
	s.mu.Unlock()
	return cloneProfile(loaded), nil
}

func (s *StoreImpl) SaveProfile(ctx context.Context, p *profile.Profile) error {
	mem := cloneProfile(p)

	s.mu.Lock()
	if prev := s.profileByID[p.TelegramID]; prev != nil {
		if mem.ID == 0 {
			mem.ID = prev.ID
		}
		if mem.Username == "" {
			mem.Username = prev.Username
		}
	}
	s.profileByID[p.TelegramID] = mem
	if mem.ID != 0 {
		s.byRowID[mem.ID] = p.TelegramID
	}
	s.mu.Unlock()

	durable := cloneProfile(mem)
	if err := s.profiles.Upsert(ctx, durable); err != nil {
		log.Printf("store: save profile %d durable write failed: %v", p.TelegramID, err)
		return fmt.Errorf("%w: save profile %d: %w", ErrDurable, p.TelegramID, err)
	}

	// upsert assigned the row id; record it for edge writes
	s.mu.Lock()
	mem.ID = durable.ID
	s.byRowID[durable.ID] = p.TelegramID
	s.mu.Unlock()
	return nil
}

// TouchUsername records the @handle in memory only; it is never persisted.
func (s *StoreImpl) TouchUsername(id int64, username string) {
	if username == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if p := s.profileByID[id]; p != nil {
		p.Username = strings.ToLower(username)
	}
}

func (s *StoreImpl) FindByUsername(username string) *profile.Profile {
	username = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(username), "@"))
	if username == "" {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.profileByID {
		if p.Username == username {
			return cloneProfile(p)
		}
	}
	return nil
}

func (s *StoreImpl) AllProfiles() []*profile.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*profile.Profile, 0, len(s.profileByID))
	for _, p := range s.profileByID {
		out = append(out, cloneProfile(p))
	}
	return out
}

func (s *StoreImpl) CompleteProfiles() []*profile.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*profile.Profile
	for _, p := range s.profileByID {
		if p.ProfileComplete {
			out = append(out, cloneProfile(p))
		}
	}
	return out
}

/*
LIKES AND MATCHES
*/

func (s *StoreImpl) HasLiked(sender, receiver int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return hasEdge(s.likeSets, sender, receiver)
}

func (s *StoreImpl) Liked(id int64) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return keysOf(s.likeSets[id])
}

func (s *StoreImpl) AddLike(ctx context.Context, sender, receiver int64) error {
	s.mu.Lock()
	addEdge(s.likeSets, sender, receiver)
	s.mu.Unlock()

	sid, rid, ok := s.rowIDs(sender, receiver)
	if !ok {
		log.Printf("store: like %d->%d has no durable rows to attach to", sender, receiver)
		return fmt.Errorf("%w: like %d->%d: profiles not persisted", ErrDurable, sender, receiver)
	}
	if err := s.likes.Create(ctx, &like.Like{SenderID: sid, ReceiverID: rid}); err != nil {
		log.Printf("store: like %d->%d durable write failed: %v", sender, receiver, err)
		return fmt.Errorf("%w: like %d->%d: %w", ErrDurable, sender, receiver, err)
	}
	return nil
}

func (s *StoreImpl) AreMatched(a, b int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return hasEdge(s.matchSets, a, b)
}

func (s *StoreImpl) Matches(id int64) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return keysOf(s.matchSets[id])
}

func (s *StoreImpl) MarkMatched(ctx context.Context, a, b int64) error {
	s.mu.Lock()
	addEdge(s.matchSets, a, b)
	addEdge(s.matchSets, b, a)
	s.mu.Unlock()

	aid, bid, ok := s.rowIDs(a, b)
	if !ok {
		return fmt.Errorf("%w: match %d<->%d: profiles not persisted", ErrDurable, a, b)
	}
	if err := s.likes.SetMatch(ctx, aid, bid, true); err != nil {
		log.Printf("store: match %d<->%d durable write failed: %v", a, b, err)
		return fmt.Errorf("%w: match %d<->%d: %w", ErrDurable, a, b, err)
	}
	return nil
}

// RemoveMatch clears the match both ways. The like edges stay, so the pair
// remains excluded from each other's candidates.
func (s *StoreImpl) RemoveMatch(ctx context.Context, a, b int64) error {
	s.mu.Lock()
	delete(s.matchSets[a], b)
	delete(s.matchSets[b], a)
	s.mu.Unlock()

	aid, bid, ok := s.rowIDs(a, b)
	if !ok {
		return fmt.Errorf("%w: unmatch %d<->%d: profiles not persisted", ErrDurable, a, b)
	}
	if err := s.likes.SetMatch(ctx, aid, bid, false); err != nil {
		log.Printf("store: unmatch %d<->%d durable write failed: %v", a, b, err)
		return fmt.Errorf("%w: unmatch %d<->%d: %w", ErrDurable, a, b, err)
	}
	return nil
}

/*
BLOCKS
*/

// AddBlock records the directed block edge and severs any existing match
// between the pair, in memory and durably.
func (s *StoreImpl) AddBlock(ctx context.Context, blocker, blocked int64) error {
	s.mu.Lock()
	addEdge(s.blockSets, blocker, blocked)
	delete(s.matchSets[blocker], blocked)
	delete(s.matchSets[blocked], blocker)
	s.mu.Unlock()

	bid, did, ok := s.rowIDs(blocker, blocked)
	if !ok {
		return fmt.Errorf("%w: block %d->%d: profiles not persisted", ErrDurable, blocker, blocked)
	}
	if err := s.blocks.Add(ctx, &block.Block{BlockerID: bid, BlockedID: did}); err != nil {
		log.Printf("store: block %d->%d durable write failed: %v", blocker, blocked, err)
		return fmt.Errorf("%w: block %d->%d: %w", ErrDurable, blocker, blocked, err)
	}
	if err := s.likes.SetMatch(ctx, bid, did, false); err != nil {
		log.Printf("store: block %d->%d match clear failed: %v", blocker, blocked, err)
		return fmt.Errorf("%w: block %d->%d: %w", ErrDurable, blocker, blocked, err)
	}
	return nil
}

// BlockedEither reports whether either direction of the pair is blocked.
// Block edges are directed in storage but exclusionary both ways.
func (s *StoreImpl) BlockedEither(a, b int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return hasEdge(s.blockSets, a, b) || hasEdge(s.blockSets, b, a)
}

func (s *StoreImpl) Blocks(id int64) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return keysOf(s.blockSets[id])
}

/*
REPORTS
*/

func (s *StoreImpl) AddReport(ctx context.Context, reporter, reported int64, reason, reference string) error {
	s.mu.Lock()
	s.reportLog[reporter] = append(s.reportLog[reporter], reported)
	s.mu.Unlock()

	rid, did, ok := s.rowIDs(reporter, reported)
	if !ok {
		return fmt.Errorf("%w: report %d->%d: profiles not persisted", ErrDurable, reporter, reported)
	}
	rep := &report.Report{ReporterID: rid, ReportedID: did, Reason: reason, Reference: reference}
	if err := s.reports.Create(ctx, rep); err != nil {
		log.Printf("store: report %d->%d durable write failed: %v", reporter, reported, err)
		return fmt.Errorf("%w: report %d->%d: %w", ErrDurable, reporter, reported, err)
	}
	return nil
}

/*
SECRET CRUSHES
*/

func (s *StoreImpl) HasCrush(crusher, crushee int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return hasEdge(s.crushSets, crusher, crushee)
}

func (s *StoreImpl) Crushes(id int64) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return keysOf(s.crushSets[id])
}

func (s *StoreImpl) AddRegisteredCrush(ctx context.Context, crusher, crushee int64) error {
	s.mu.Lock()
	addEdge(s.crushSets, crusher, crushee)
	s.mu.Unlock()

	cid, eid, ok := s.rowIDs(crusher, crushee)
	if !ok {
		return fmt.Errorf("%w: crush %d->%d: profiles not persisted", ErrDurable, crusher, crushee)
	}
	c := &secret_crush.SecretCrush{CrusherID: cid, CrusheeID: &eid}
	if err := s.crushes.Create(ctx, c); err != nil {
		log.Printf("store: crush %d->%d durable write failed: %v", crusher, crushee, err)
		return fmt.Errorf("%w: crush %d->%d: %w", ErrDurable, crusher, crushee, err)
	}
	return nil
}

func (s *StoreImpl) SetCrushMutual(ctx context.Context, a, b int64) error {
	aid, bid, ok := s.rowIDs(a, b)
	if !ok {
		return fmt.Errorf("%w: mutual crush %d<->%d: profiles not persisted", ErrDurable, a, b)
	}
	if err := s.crushes.SetMutual(ctx, aid, bid, true); err != nil {
		log.Printf("store: mutual crush %d<->%d durable write failed: %v", a, b, err)
		return fmt.Errorf("%w: mutual crush %d<->%d: %w", ErrDurable, a, b, err)
	}
	return nil
}

// AddExternalCrush has no memory side: external crushes exist only durably
// and can never become mutual. A failure here means nothing was saved.
func (s *StoreImpl) AddExternalCrush(ctx context.Context, crusher int64, name, social, photoHex string) error {
	s.mu.RLock()
	p := s.profileByID[crusher]
	s.mu.RUnlock()
	if p == nil || p.ID == 0 {
		return fmt.Errorf("external crush for %d: profile not persisted", crusher)
	}

	c := &secret_crush.SecretCrush{
		CrusherID:          p.ID,
		CrushName:          name,
		SocialMediaAccount: social,
		CrushPhoto:         photoHex,
	}
	if err := s.crushes.Create(ctx, c); err != nil {
		log.Printf("store: external crush for %d write failed: %v", crusher, err)
		return fmt.Errorf("external crush for %d: %w", crusher, err)
	}
	return nil
}

/*
CHAT
*/

func (s *StoreImpl) AppendChat(ctx context.Context, sender, receiver int64, text string) error {
	entry := ChatEntry{Sender: sender, Text: text, Timestamp: time.Now()}

	s.mu.Lock()
	key := newPairKey(sender, receiver)
	s.chatLogs[key] = append(s.chatLogs[key], entry)
	s.mu.Unlock()

	sid, rid, ok := s.rowIDs(sender, receiver)
	if !ok {
		return fmt.Errorf("%w: chat %d->%d: profiles not persisted", ErrDurable, sender, receiver)
	}
	m := &chat_message.ChatMessage{SenderID: sid, ReceiverID: rid, Text: text}
	if err := s.messages.Create(ctx, m); err != nil {
		log.Printf("store: chat %d->%d durable write failed: %v", sender, receiver, err)
		return fmt.Errorf("%w: chat %d->%d: %w", ErrDurable, sender, receiver, err)
	}
	return nil
}

// ChatHistory merges the durable log with memory entries the database never
// saw, drops duplicates (same text within a second), and sorts by time.
// When the durable read fails it degrades to the memory log alone.
func (s *StoreImpl) ChatHistory(ctx context.Context, a, b int64) ([]ChatEntry, error) {
	var merged []ChatEntry

	aid, bid, ok := s.rowIDs(a, b)
	if ok {
		rows, err := s.messages.GetBetween(ctx, aid, bid)
		if err != nil {
			log.Printf("store: chat history %d<->%d durable read failed: %v", a, b, err)
		} else {
			s.mu.RLock()
			for _, m := range rows {
				sender, found := s.byRowID[m.SenderID]
				if !found {
					continue
				}
				merged = append(merged, ChatEntry{Sender: sender, Text: m.Text, Timestamp: m.CreatedAt})
			}
			s.mu.RUnlock()
		}
	}

	s.mu.RLock()
	for _, entry := range s.chatLogs[newPairKey(a, b)] {
		if containsNear(merged, entry) {
			continue
		}
		merged = append(merged, entry)
	}
	s.mu.RUnlock()

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Timestamp.Before(merged[j].Timestamp)
	})
	return merged, nil
}

// containsNear reports whether an entry with the same text already exists
// within one second; the durable and memory logs overlap after a write that
// succeeded on both sides.
func containsNear(entries []ChatEntry, e ChatEntry) bool {
	for _, existing := range entries {
		if existing.Text != e.Text {
			continue
		}
		d := existing.Timestamp.Sub(e.Timestamp)
		if d < 0 {
			d = -d
		}
		if d < time.Second {
			return true
		}
	}
	return false
}

/*
STATUS
*/

func (s *StoreImpl) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := Counts{Users: len(s.profileByID)}
	for _, p := range s.profileByID {
		if p.ProfileComplete {
			c.CompleteProfiles++
		}
	}
	edges := 0
	for _, set := range s.matchSets {
		edges += len(set)
	}
	c.Matches = edges / 2
	return c
}

func keysOf(set map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
