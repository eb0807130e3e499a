package domain

// Engagement is a read-only snapshot of an item's like and comment counters.
// The counters are owned and mutated by the like/comment collaborators;
// ranking only reads them.
type Engagement struct {
	Likes    int64
	Comments int64
}
