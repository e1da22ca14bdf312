package workers

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/ecodeclub/mq-api"

	"github.com/Guyuepp/Go-Social-Interaction/domain"
)

type recordKey struct {
	uid    int64
	target string
	kind   domain.Kind
}

// memoryStore is an in-memory InteractionStore. Transactions are serialized
// and rolled back on error, unless the store was built by newConcurrentStore.
type memoryStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	// concurrent runs transactions side by side with no isolation or rollback
	concurrent bool

	records  map[recordKey]domain.InteractionRecord
	posts    map[string]domain.Aggregates
	comments map[string]domain.Aggregates

	// failures makes the next n writes fail with a storage error
	failures int
}

var _ domain.InteractionStore = (*memoryStore)(nil)

func newMemoryStore(posts []string, comments []string) *memoryStore {
	s := &memoryStore{
		records:  map[recordKey]domain.InteractionRecord{},
		posts:    map[string]domain.Aggregates{},
		comments: map[string]domain.Aggregates{},
	}
	for _, id := range posts {
		s.posts[id] = domain.Aggregates{TargetID: id}
	}
	for _, id := range comments {
		s.comments[id] = domain.Aggregates{TargetID: id}
	}
	return s
}

// newConcurrentStore gives no protection against lost updates: two transactions
// on the same target interleave freely between LockAggregates and SetField.
func newConcurrentStore(posts []string) *memoryStore {
	s := newMemoryStore(posts, nil)
	s.concurrent = true
	return s
}

var errStorage = errors.New("storage unavailable")

func (s *memoryStore) failOnce() error {
	if s.failures > 0 {
		s.failures--
		return errStorage
	}
	return nil
}

func (s *memoryStore) Transaction(ctx context.Context, fn func(tx domain.InteractionStore) error) error {
	if s.concurrent {
		return fn(s)
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	records := make(map[recordKey]domain.InteractionRecord, len(s.records))
	for k, v := range s.records {
		records[k] = v
	}
	posts := make(map[string]domain.Aggregates, len(s.posts))
	for k, v := range s.posts {
		posts[k] = v
	}
	comments := make(map[string]domain.Aggregates, len(s.comments))
	for k, v := range s.comments {
		comments[k] = v
	}
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.records, s.posts, s.comments = records, posts, comments
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memoryStore) FindInteraction(ctx context.Context, uid int64, targetID string, kind domain.Kind) (domain.InteractionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[recordKey{uid, targetID, kind}]
	if !ok {
		return domain.InteractionRecord{}, domain.ErrNotFound
	}
	return rec, nil
}

func (s *memoryStore) InsertInteraction(ctx context.Context, r *domain.InteractionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failOnce(); err != nil {
		return err
	}
	key := recordKey{r.UserID, r.TargetID, r.Kind}
	if _, ok := s.records[key]; ok {
		return domain.ErrConflict
	}
	s.records[key] = *r
	return nil
}

func (s *memoryStore) UpdateScore(ctx context.Context, uid int64, targetID string, score float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := recordKey{uid, targetID, domain.KindRatePost}
	rec, ok := s.records[key]
	if !ok {
		return domain.ErrNotFound
	}
	rec.Score = score
	s.records[key] = rec
	return nil
}

func (s *memoryStore) DeleteInteraction(ctx context.Context, uid int64, targetID string, kind domain.Kind) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := recordKey{uid, targetID, kind}
	if _, ok := s.records[key]; !ok {
		return false, nil
	}
	delete(s.records, key)
	return true, nil
}

func (s *memoryStore) target(field domain.CounterField) map[string]domain.Aggregates {
	if field == domain.CommentLikeCount {
		return s.comments
	}
	return s.posts
}

func (s *memoryStore) IncrementCounter(ctx context.Context, targetID string, field domain.CounterField, delta int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tbl := s.target(field)
	agg, ok := tbl[targetID]
	if !ok {
		return domain.ErrNotFound
	}
	switch field {
	case domain.PostLikeCount, domain.CommentLikeCount:
		agg.LikeCount += delta
	case domain.PostCollectCount:
		agg.CollectCount += delta
	case domain.PostRatingCount:
		agg.RatingCount += delta
	default:
		return domain.ErrBadParamInput
	}
	tbl[targetID] = agg
	return nil
}

func (s *memoryStore) SetField(ctx context.Context, targetID string, field domain.CounterField, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tbl := s.target(field)
	agg, ok := tbl[targetID]
	if !ok {
		return domain.ErrNotFound
	}
	switch field {
	case domain.PostLikeCount, domain.CommentLikeCount:
		agg.LikeCount = value.(int64)
	case domain.PostCollectCount:
		agg.CollectCount = value.(int64)
	case domain.PostRatingCount:
		agg.RatingCount = value.(int64)
	case domain.PostRatingAverage:
		agg.RatingAverage = value.(float64)
	}
	tbl[targetID] = agg
	return nil
}

func (s *memoryStore) LockAggregates(ctx context.Context, targetType domain.TargetType, targetID string) (domain.Aggregates, error) {
	agg, err := s.GetAggregates(ctx, targetType, targetID)
	if s.concurrent {
		// widen the read-modify-write window
		runtime.Gosched()
	}
	return agg, err
}

func (s *memoryStore) GetAggregates(ctx context.Context, targetType domain.TargetType, targetID string) (domain.Aggregates, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tbl := s.posts
	if targetType == domain.TargetComment {
		tbl = s.comments
	}
	agg, ok := tbl[targetID]
	if !ok {
		return domain.Aggregates{}, domain.ErrNotFound
	}
	return agg, nil
}

func (s *memoryStore) ListMembers(ctx context.Context, kind domain.Kind, targetID string) ([]domain.InteractionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []domain.InteractionRecord
	for k, v := range s.records {
		if k.kind == kind && k.target == targetID {
			res = append(res, v)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].UserID < res[j].UserID })
	return res, nil
}

func (s *memoryStore) CountInteractions(ctx context.Context, kind domain.Kind, targetID string) (int64, error) {
	members, err := s.ListMembers(ctx, kind, targetID)
	return int64(len(members)), err
}

func (s *memoryStore) RatingStats(ctx context.Context, targetID string) (float64, int64, error) {
	members, err := s.ListMembers(ctx, domain.KindRatePost, targetID)
	var sum float64
	for _, m := range members {
		sum += m.Score
	}
	return sum, int64(len(members)), err
}

func (s *memoryStore) FetchTargetIDs(ctx context.Context, targetType domain.TargetType, cursor string, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tbl := s.posts
	if targetType == domain.TargetComment {
		tbl = s.comments
	}
	ids := make([]string, 0, len(tbl))
	for id := range tbl {
		if id > cursor {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (s *memoryStore) aggregates(targetID string) domain.Aggregates {
	s.mu.Lock()
	defer s.mu.Unlock()
	if agg, ok := s.posts[targetID]; ok {
		return agg
	}
	return s.comments[targetID]
}

func (s *memoryStore) setAggregates(agg domain.Aggregates) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[agg.TargetID]; ok {
		s.comments[agg.TargetID] = agg
		return
	}
	s.posts[agg.TargetID] = agg
}

func (s *memoryStore) setFailures(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = n
}

type memoryDeadLetters struct {
	mu      sync.Mutex
	letters []domain.DeadLetter
}

func (m *memoryDeadLetters) Store(ctx context.Context, dl *domain.DeadLetter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	dl.ID = int64(len(m.letters) + 1)
	m.letters = append(m.letters, *dl)
	return nil
}

func (m *memoryDeadLetters) FetchPending(ctx context.Context, limit int) ([]domain.DeadLetter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []domain.DeadLetter
	for _, dl := range m.letters {
		if dl.ReplayedAt == nil && dl.SupersededAt == nil && len(res) < limit {
			res = append(res, dl)
		}
	}
	return res, nil
}

func (m *memoryDeadLetters) MarkReplayed(ctx context.Context, id int64) error {
	return m.resolve(id, func(dl *domain.DeadLetter, at *time.Time) { dl.ReplayedAt = at })
}

func (m *memoryDeadLetters) MarkSuperseded(ctx context.Context, id int64) error {
	return m.resolve(id, func(dl *domain.DeadLetter, at *time.Time) { dl.SupersededAt = at })
}

func (m *memoryDeadLetters) resolve(id int64, set func(dl *domain.DeadLetter, at *time.Time)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.letters {
		dl := &m.letters[i]
		if dl.ID == id && dl.ReplayedAt == nil && dl.SupersededAt == nil {
			now := time.Now()
			set(dl, &now)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memoryDeadLetters) all() []domain.DeadLetter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.DeadLetter(nil), m.letters...)
}

// chanConsumer feeds the reconciler from a channel.
type chanConsumer struct {
	ch     chan *mq.Message
	closed chan struct{}
	once   sync.Once
}

func newChanConsumer() *chanConsumer {
	return &chanConsumer{
		ch:     make(chan *mq.Message, 64),
		closed: make(chan struct{}),
	}
}

func (c *chanConsumer) Consume(ctx context.Context) (*mq.Message, error) {
	select {
	case msg := <-c.ch:
		return msg, nil
	case <-c.closed:
		return nil, errors.New("consumer closed")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *chanConsumer) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

// memoryCache is an in-memory DedupCache with the same cold-key contract as
// the Redis one: nothing is answered for a key until it has been warmed.
type memoryCache struct {
	mu      sync.Mutex
	sets    map[string]map[int64]struct{}
	ratings map[string]map[int64]float64
}

var _ domain.DedupCache = (*memoryCache)(nil)

func newMemoryCache() *memoryCache {
	return &memoryCache{
		sets:    map[string]map[int64]struct{}{},
		ratings: map[string]map[int64]float64{},
	}
}

func cacheKey(kind domain.Kind, targetID string) string {
	return string(kind) + ":" + targetID
}

func (c *memoryCache) AddMember(ctx context.Context, kind domain.Kind, targetID string, uid int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	set, ok := c.sets[cacheKey(kind, targetID)]
	if !ok {
		return false, domain.ErrCacheMiss
	}
	if _, ok = set[uid]; ok {
		return false, nil
	}
	set[uid] = struct{}{}
	return true, nil
}

func (c *memoryCache) RemoveMember(ctx context.Context, kind domain.Kind, targetID string, uid int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	set, ok := c.sets[cacheKey(kind, targetID)]
	if !ok {
		return false, domain.ErrCacheMiss
	}
	if _, ok = set[uid]; !ok {
		return false, nil
	}
	delete(set, uid)
	return true, nil
}

func (c *memoryCache) IsMember(ctx context.Context, kind domain.Kind, targetID string, uid int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	set, ok := c.sets[cacheKey(kind, targetID)]
	if !ok {
		return false, domain.ErrCacheMiss
	}
	_, ok = set[uid]
	return ok, nil
}

func (c *memoryCache) Members(ctx context.Context, kind domain.Kind, targetID string) ([]int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	set, ok := c.sets[cacheKey(kind, targetID)]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	res := make([]int64, 0, len(set))
	for uid := range set {
		res = append(res, uid)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res, nil
}

func (c *memoryCache) PutRating(ctx context.Context, targetID string, uid int64, score float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	hash, ok := c.ratings[targetID]
	if !ok {
		return domain.ErrCacheMiss
	}
	hash[uid] = score
	return nil
}

func (c *memoryCache) GetRating(ctx context.Context, targetID string, uid int64) (float64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hash, ok := c.ratings[targetID]
	if !ok {
		return 0, false, domain.ErrCacheMiss
	}
	score, ok := hash[uid]
	return score, ok, nil
}

func (c *memoryCache) Warm(ctx context.Context, kind domain.Kind, targetID string, records []domain.InteractionRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if kind == domain.KindRatePost {
		if _, ok := c.ratings[targetID]; ok {
			return nil
		}
		hash := map[int64]float64{}
		for _, r := range records {
			hash[r.UserID] = r.Score
		}
		c.ratings[targetID] = hash
		return nil
	}
	key := cacheKey(kind, targetID)
	if _, ok := c.sets[key]; ok {
		return nil
	}
	set := map[int64]struct{}{}
	for _, r := range records {
		set[r.UserID] = struct{}{}
	}
	c.sets[key] = set
	return nil
}

// evict drops a key as if Redis had expired it.
func (c *memoryCache) evict(kind domain.Kind, targetID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if kind == domain.KindRatePost {
		delete(c.ratings, targetID)
		return
	}
	delete(c.sets, cacheKey(kind, targetID))
}
