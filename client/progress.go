package client

import (
	"encoding/json"
	"math"
	"os"
	"sort"
	"sync"
)

// ProgressStore tracks which subtopics the learner has completed per topic,
// mirroring the browser-local progress of the web client. Every mutation is
// written straight to the backing file; a missing or malformed file loads as
// empty state. Progress is local to this store, never synced to the server.
type ProgressStore struct {
	mu   sync.Mutex
	path string

	completed map[string]map[string]bool // topicId -> set of completed subtopicIds
	percent   map[string]int             // topicId -> completion percentage
	subtopics map[string][]string        // topicId -> known subtopic ids (session only)
}

// progressPayload is the on-disk shape of the store
type progressPayload struct {
	Completed map[string][]string `json:"completedSubtopics"`
	Percent   map[string]int      `json:"topicProgress"`
}

// OpenProgressStore loads the store from path, treating any read or parse
// failure as empty state.
func OpenProgressStore(path string) *ProgressStore {
	s := &ProgressStore{
		path:      path,
		completed: make(map[string]map[string]bool),
		percent:   make(map[string]int),
		subtopics: make(map[string][]string),
	}
	s.load()
	return s
}

func (s *ProgressStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var payload progressPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return
	}
	for topicID, ids := range payload.Completed {
		set := make(map[string]bool, len(ids))
		for _, id := range ids {
			set[id] = true
		}
		s.completed[topicID] = set
	}
	for topicID, pct := range payload.Percent {
		s.percent[topicID] = pct
	}
}

// save must be called with the mutex held
func (s *ProgressStore) save() error {
	payload := progressPayload{
		Completed: make(map[string][]string, len(s.completed)),
		Percent:   make(map[string]int, len(s.percent)),
	}
	for topicID, set := range s.completed {
		ids := make([]string, 0, len(set))
		for id := range set {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		payload.Completed[topicID] = ids
	}
	for topicID, pct := range s.percent {
		payload.Percent[topicID] = pct
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// SetSubtopics registers the subtopic ids of a topic so percentages can be
// computed against the full lesson list.
func (s *ProgressStore) SetSubtopics(topicID string, subtopicIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subtopics[topicID] = append([]string(nil), subtopicIDs...)
	s.percent[topicID] = s.computePercent(topicID)
	return s.save()
}

// MarkComplete records a subtopic as completed. Repeated calls are a no-op.
func (s *ProgressStore) MarkComplete(topicID, subtopicID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.completed[topicID]
	if set == nil {
		set = make(map[string]bool)
		s.completed[topicID] = set
	}
	set[subtopicID] = true
	s.percent[topicID] = s.computePercent(topicID)
	return s.save()
}

// MarkIncomplete removes a subtopic from the completed set
func (s *ProgressStore) MarkIncomplete(topicID, subtopicID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.completed[topicID], subtopicID)
	s.percent[topicID] = s.computePercent(topicID)
	return s.save()
}

// IsComplete reports whether the subtopic is marked completed
func (s *ProgressStore) IsComplete(topicID, subtopicID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed[topicID][subtopicID]
}

// CompletedCount returns the number of completed subtopics of a topic
func (s *ProgressStore) CompletedCount(topicID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.completed[topicID])
}

// CompletionPercentage returns round(100 * completed/total) for the topic's
// registered subtopics, intersecting the completed set with the known list.
// Until SetSubtopics registers the lesson list for a topic, the percentage
// loaded from the backing file is served as-is, so a reloaded store keeps
// reporting the same numbers it persisted.
func (s *ProgressStore) CompletionPercentage(topicID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.computePercent(topicID)
}

// computePercent must be called with the mutex held
func (s *ProgressStore) computePercent(topicID string) int {
	subtopics, registered := s.subtopics[topicID]
	if !registered {
		return s.percent[topicID]
	}
	if len(subtopics) == 0 {
		return 0
	}
	set := s.completed[topicID]
	done := 0
	for _, id := range subtopics {
		if set[id] {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(subtopics))))
}
