package models

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// UserPreferences drive trip-deal lookups.
type UserPreferences struct {
	TripDuration     int `json:"tripDuration"`
	TicketQuantity   int `json:"ticketQuantity"`
	NumberOfAdults   int `json:"numberOfAdults"`
	NumberOfChildren int `json:"numberOfChildren"`
}

// DefaultUserPreferences returns the preferences assigned to new users.
func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		TripDuration:     1,
		TicketQuantity:   1,
		NumberOfAdults:   1,
		NumberOfChildren: 0,
	}
}

// User is the aggregate the engine mutates: an identity plus two append-only
// sequences (visited locations and rewards). The mutex makes appends and
// snapshots safe when different goroutines touch different users in one batch
// and when a snapshot races an append from elsewhere; the engine never runs
// two workers against the same user within one batch call.
type User struct {
	ID          uuid.UUID       `json:"userId"`
	Name        string          `json:"userName"`
	Phone       string          `json:"phoneNumber"`
	Email       string          `json:"emailAddress"`
	Preferences UserPreferences `json:"userPreferences"`

	mu        sync.Mutex
	visited   []VisitedLocation
	rewards   []UserReward
	tripDeals []TripDeal
}

// NewUser creates a user with default preferences and empty history.
func NewUser(id uuid.UUID, name, phone, email string) *User {
	return &User{
		ID:          id,
		Name:        name,
		Phone:       phone,
		Email:       email,
		Preferences: DefaultUserPreferences(),
	}
}

// AddVisitedLocation appends to the user's location history.
func (u *User) AddVisitedLocation(vl VisitedLocation) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.visited = append(u.visited, vl)
}

// VisitedLocations returns a snapshot copy of the history in insertion order.
func (u *User) VisitedLocations() []VisitedLocation {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]VisitedLocation, len(u.visited))
	copy(out, u.visited)
	return out
}

// LastVisitedLocation returns the most recent history entry, if any.
func (u *User) LastVisitedLocation() (VisitedLocation, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.visited) == 0 {
		return VisitedLocation{}, false
	}
	return u.visited[len(u.visited)-1], true
}

// AddReward appends a reward. Uniqueness per attraction is the matcher's
// responsibility, not enforced here.
func (u *User) AddReward(r UserReward) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.rewards = append(u.rewards, r)
}

// Rewards returns a snapshot copy of the reward list in insertion order.
func (u *User) Rewards() []UserReward {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]UserReward, len(u.rewards))
	copy(out, u.rewards)
	return out
}

// RewardPoints sums the points across all rewards.
func (u *User) RewardPoints() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	total := 0
	for _, r := range u.rewards {
		total += r.Points
	}
	return total
}

// SetTripDeals stores the latest trip-deal quote for the user.
func (u *User) SetTripDeals(deals []TripDeal) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.tripDeals = deals
}

// TripDeals returns the last stored quote.
func (u *User) TripDeals() []TripDeal {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]TripDeal, len(u.tripDeals))
	copy(out, u.tripDeals)
	return out
}

// NewVisitedLocation stamps a location against a user at the given time.
func NewVisitedLocation(userID uuid.UUID, loc Location, at time.Time) VisitedLocation {
	return VisitedLocation{UserID: userID, Location: loc, TimeVisited: at}
}
