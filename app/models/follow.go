package models

// Follow is a directed edge in the social graph: follower follows followed.
// The composite unique index blocks duplicate edges; the irreflexivity check
// (no self-follow) lives in the repository because an index cannot express it.
type Follow struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	FollowerID uint `gorm:"not null;uniqueIndex:idx_follow_edge" json:"follower_id"`
	Follower   User `gorm:"foreignKey:FollowerID" json:"follower,omitempty" validate:"-"`
	FollowedID uint `gorm:"not null;uniqueIndex:idx_follow_edge" json:"followed_id"`
	Followed   User `gorm:"foreignKey:FollowedID" json:"followed,omitempty" validate:"-"`
}
