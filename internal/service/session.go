package service

import (
	"math/rand"
	"sync"
	"time"

	"wordquiz/internal/domain"
)

// AnswerResult is the outcome of answering or skipping the current word
type AnswerResult struct {
	Expected domain.WordPair
	Correct  bool
	Next     domain.WordPair
	HasNext  bool
}

// SessionState keeps per-user quiz sessions in memory.
// Words are drawn from a shuffled copy of the vocabulary so none repeats until the cycle ends.
type SessionState struct {
	mu       sync.Mutex
	sessions map[int64]*domain.Session
	rnd      *rand.Rand
}

// NewSessionState creates session storage; nil rnd seeds from the clock
func NewSessionState(rnd *rand.Rand) *SessionState {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SessionState{
		sessions: make(map[int64]*domain.Session),
		rnd:      rnd,
	}
}

// Reset clears the user's queue so the next draw reshuffles
func (s *SessionState) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session(userID).Queue = nil
}

// Next draws the next word for the user and makes it current.
// Returns false when the vocabulary is empty.
func (s *SessionState) Next(userID int64, vocabulary []domain.WordPair) (domain.WordPair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.nextLocked(s.session(userID), vocabulary)
}

// Answer grades answer against the current word and draws the next one in a single step,
// so two quick messages are never graded against the same word.
// ok is false when the user has no active question.
func (s *SessionState) Answer(userID int64, answer string, vocabulary []domain.WordPair) (result AnswerResult, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.advanceLocked(userID, vocabulary, func(expected domain.WordPair) bool {
		return Grade(expected.Target, answer)
	})
}

// Skip drops the current word without grading and draws the next one
func (s *SessionState) Skip(userID int64, vocabulary []domain.WordPair) (result AnswerResult, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.advanceLocked(userID, vocabulary, func(domain.WordPair) bool { return false })
}

// Current returns the word the user is expected to answer
func (s *SessionState) Current(userID int64) (domain.WordPair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok || sess.Current == nil {
		return domain.WordPair{}, false
	}
	return *sess.Current, true
}

// Remaining returns how many words are left in the user's current cycle
func (s *SessionState) Remaining(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return len(sess.Queue)
	}
	return 0
}

func (s *SessionState) advanceLocked(userID int64, vocabulary []domain.WordPair, grade func(domain.WordPair) bool) (AnswerResult, bool) {
	sess, found := s.sessions[userID]
	if !found || sess.Current == nil {
		return AnswerResult{}, false
	}

	result := AnswerResult{Expected: *sess.Current}
	result.Correct = grade(result.Expected)
	result.Next, result.HasNext = s.nextLocked(sess, vocabulary)

	return result, true
}

func (s *SessionState) nextLocked(sess *domain.Session, vocabulary []domain.WordPair) (domain.WordPair, bool) {
	if len(vocabulary) == 0 {
		sess.Current = nil
		sess.Queue = nil
		return domain.WordPair{}, false
	}

	if len(sess.Queue) == 0 {
		queue := make([]domain.WordPair, len(vocabulary))
		copy(queue, vocabulary)
		s.rnd.Shuffle(len(queue), func(i, j int) {
			queue[i], queue[j] = queue[j], queue[i]
		})
		sess.Queue = queue
	}

	pair := sess.Queue[0]
	sess.Queue = sess.Queue[1:]
	sess.Current = &pair

	return pair, true
}

func (s *SessionState) session(userID int64) *domain.Session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &domain.Session{}
		s.sessions[userID] = sess
	}
	return sess
}
